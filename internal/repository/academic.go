package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campushq/college-portal-api/internal/model"
)

// MarksRepository defines the interface for marks entries.
type MarksRepository interface {
	AddMarks(ctx context.Context, marks *model.Marks) error
	ListMarksByStudent(ctx context.Context, studentID string) ([]*model.Marks, error)
}

// AttendanceRepository defines the interface for attendance records.
type AttendanceRepository interface {
	AddAttendance(ctx context.Context, record *model.Attendance) error
	ListAttendanceByStudent(ctx context.Context, studentID string) ([]*model.Attendance, error)
}

// NoteRepository defines the interface for shared course notes.
type NoteRepository interface {
	AddNote(ctx context.Context, note *model.Note) error
	ListNotes(ctx context.Context, paperID *string) ([]*model.Note, error)
}

const (
	marksCollection      = "marks"
	attendanceCollection = "attendance"
	noteCollection       = "notes"
)

type marksMongoRepository struct {
	db *mongo.Database
}

// NewMarksMongoRepository creates a new MongoDB repository for marks.
func NewMarksMongoRepository(db *mongo.Database) MarksRepository {
	return &marksMongoRepository{db: db}
}

func (r *marksMongoRepository) AddMarks(ctx context.Context, marks *model.Marks) error {
	marks.CreatedAt = time.Now()

	_, err := r.db.Collection(marksCollection).InsertOne(ctx, marks)
	return err
}

func (r *marksMongoRepository) ListMarksByStudent(ctx context.Context, studentID string) ([]*model.Marks, error) {
	cursor, err := r.db.Collection(marksCollection).Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var marks []*model.Marks
	if err := cursor.All(ctx, &marks); err != nil {
		return nil, err
	}

	return marks, nil
}

type attendanceMongoRepository struct {
	db *mongo.Database
}

// NewAttendanceMongoRepository creates a new MongoDB repository for
// attendance records.
func NewAttendanceMongoRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceMongoRepository{db: db}
}

func (r *attendanceMongoRepository) AddAttendance(ctx context.Context, record *model.Attendance) error {
	record.CreatedAt = time.Now()

	_, err := r.db.Collection(attendanceCollection).InsertOne(ctx, record)
	return err
}

func (r *attendanceMongoRepository) ListAttendanceByStudent(
	ctx context.Context,
	studentID string,
) ([]*model.Attendance, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.db.Collection(attendanceCollection).Find(ctx, bson.M{"student_id": studentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.Attendance
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

type noteMongoRepository struct {
	db *mongo.Database
}

// NewNoteMongoRepository creates a new MongoDB repository for notes.
func NewNoteMongoRepository(db *mongo.Database) NoteRepository {
	return &noteMongoRepository{db: db}
}

func (r *noteMongoRepository) AddNote(ctx context.Context, note *model.Note) error {
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	_, err := r.db.Collection(noteCollection).InsertOne(ctx, note)
	return err
}

func (r *noteMongoRepository) ListNotes(ctx context.Context, paperID *string) ([]*model.Note, error) {
	filter := bson.M{}
	if paperID != nil {
		filter["paper_id"] = *paperID
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(noteCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}
