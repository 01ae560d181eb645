package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is the closed set of account roles. Unknown values are rejected at
// every gate rather than silently accepted.
type Role string

const (
	RoleStudent        Role = "student"
	RolePendingTeacher Role = "pending_teacher"
	RoleTeacher        Role = "teacher"
	RoleHOD            Role = "hod"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RolePendingTeacher, RoleTeacher, RoleHOD:
		return true
	}
	return false
}

// Registrable reports whether r may be requested through self-registration.
// The privileged teacher and hod roles are only ever assigned server-side.
func (r Role) Registrable() bool {
	return r == RoleStudent || r == RolePendingTeacher
}

// TeacherStatusPending and TeacherStatusApproved are the two states of
// TeacherDetails.Status. Approval flips both the status and the user role.
const (
	TeacherStatusPending  = "pending"
	TeacherStatusApproved = "approved"
)

// StudentDetails holds guardian information for student accounts. All fields
// are absent at registration and filled in later by administration.
type StudentDetails struct {
	ParentName    *string `bson:"parent_name"    json:"parentName"`
	ParentContact *string `bson:"parent_contact" json:"parentContact"`
	DateOfBirth   *string `bson:"date_of_birth"  json:"dateOfBirth"`
	Address       *string `bson:"address"        json:"address"`
}

// TeacherDetails holds the teaching profile for teacher accounts. Status
// starts as pending and is rewritten to approved by the HOD.
type TeacherDetails struct {
	Subjects []string  `bson:"subjects"  json:"subjects"`
	JoinedAt time.Time `bson:"joined_at" json:"joinedAt"`
	Status   string    `bson:"status"    json:"status"`
}

// User is a credential store record. The password hash never serializes to
// JSON.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name"          json:"name"`
	Email        string        `bson:"email"         json:"email"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Role         Role          `bson:"role"          json:"role"`
	Verified     bool          `bson:"verified"      json:"verified"`

	Department *string `bson:"department,omitempty"  json:"department"`
	Semester   *int    `bson:"semester,omitempty"    json:"semester"`
	RollNumber *string `bson:"roll_number,omitempty" json:"rollNumber"`

	Qualification  *string `bson:"qualification,omitempty"  json:"qualification,omitempty"`
	Specialization *string `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Experience     *int    `bson:"experience,omitempty"     json:"experience,omitempty"`

	StudentDetails *StudentDetails `bson:"student_details,omitempty" json:"studentDetails,omitempty"`
	TeacherDetails *TeacherDetails `bson:"teacher_details,omitempty" json:"teacherDetails,omitempty"`

	LastLoginAt *time.Time `bson:"last_login_at,omitempty" json:"-"`
	LoginCount  int64      `bson:"login_count"             json:"-"`
	CreatedAt   time.Time  `bson:"created_at"              json:"-"`
	UpdatedAt   time.Time  `bson:"updated_at"              json:"-"`
}

// UserProjection is the client-facing view of a user returned by the auth
// endpoints.
type UserProjection struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Department *string `json:"department"`
	Semester   *int    `json:"semester"`
	RollNumber *string `json:"rollNumber"`
}

// Projection returns the non-sensitive view of u.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:         u.ID.Hex(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		Semester:   u.Semester,
		RollNumber: u.RollNumber,
	}
}
