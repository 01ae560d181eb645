package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Paper represents a course paper. Codes are unique across the department.
type Paper struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name"          json:"name"`
	Code      string        `bson:"code"          json:"code"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}

// Marks is a single marks entry for a student on a paper.
type Marks struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string        `bson:"student_id"    json:"studentId"`
	PaperID   string        `bson:"paper_id"      json:"paperId"`
	Marks     int           `bson:"marks"         json:"marks"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
}

// Attendance statuses.
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance is a per-day attendance record for a student on a paper.
type Attendance struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID string        `bson:"student_id"    json:"studentId"`
	PaperID   string        `bson:"paper_id"      json:"paperId"`
	Date      string        `bson:"date"          json:"date"`
	Status    string        `bson:"status"        json:"status"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
}

// Note is shared course material attached to a paper.
type Note struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	PaperID   string        `bson:"paper_id"      json:"paperId"`
	Title     string        `bson:"title"         json:"title"`
	Content   string        `bson:"content"       json:"content"`
	CreatedAt time.Time     `bson:"created_at"    json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at"    json:"updatedAt"`
}

// TimetableEntry is a single scheduled slot.
type TimetableEntry struct {
	Day       string `bson:"day"        json:"day"`
	StartTime string `bson:"start_time" json:"startTime"`
	EndTime   string `bson:"end_time"   json:"endTime"`
	PaperID   string `bson:"paper_id"   json:"paperId"`
	Room      string `bson:"room"       json:"room"`
}

// Timetable is the schedule for one semester. There is at most one document
// per semester; writes upsert.
type Timetable struct {
	ID        bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	Semester  int              `bson:"semester"      json:"semester"`
	Schedule  []TimetableEntry `bson:"schedule"      json:"schedule"`
	UpdatedAt time.Time        `bson:"updated_at"    json:"updatedAt"`
}

// Notification is a message fanned out to a set of students.
type Notification struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Message    string        `bson:"message"       json:"message"`
	StudentIDs []string      `bson:"student_ids"   json:"studentIds"`
	CreatedAt  time.Time     `bson:"created_at"    json:"createdAt"`
}
