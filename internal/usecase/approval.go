package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/repository"
)

// ApprovalUsecase defines the HOD-only account administration flows.
type ApprovalUsecase interface {
	// ApproveTeacher transitions a pending_teacher account to teacher.
	ApproveTeacher(ctx context.Context, teacherID string) (*model.User, error)

	// ListPendingTeachers returns accounts awaiting approval.
	ListPendingTeachers(ctx context.Context) ([]*model.User, error)

	// RegisterStudents creates student accounts in bulk, returning how many
	// were created before the first failure.
	RegisterStudents(ctx context.Context, params []StudentParams) (int, error)
}

// StudentParams defines one student account in a bulk registration.
type StudentParams struct {
	Name     string
	Email    string
	Password string
}

// ErrNotPendingTeacher is returned when the approval target does not exist
// or is not awaiting approval.
var ErrNotPendingTeacher = errors.New("user is not a pending teacher")

type approvalUsecase struct {
	userRepo repository.UserRepository
}

// NewApprovalUsecase creates a new instance of ApprovalUsecase.
func NewApprovalUsecase(userRepo repository.UserRepository) ApprovalUsecase {
	return &approvalUsecase{userRepo: userRepo}
}

func (u *approvalUsecase) ApproveTeacher(ctx context.Context, teacherID string) (*model.User, error) {
	user, err := u.userRepo.ApproveTeacher(ctx, teacherID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotPendingTeacher
		}

		return nil, err
	}

	return user, nil
}

func (u *approvalUsecase) ListPendingTeachers(ctx context.Context) ([]*model.User, error) {
	return u.userRepo.ListUsersByRole(ctx, model.RolePendingTeacher)
}

func (u *approvalUsecase) RegisterStudents(ctx context.Context, params []StudentParams) (int, error) {
	created := 0

	for _, p := range params {
		switch {
		case p.Name == "" || p.Email == "" || p.Password == "":
			return created, fmt.Errorf("%w: %q", ErrMissingFields, p.Email)
		case !emailPattern.MatchString(p.Email):
			return created, fmt.Errorf("%w: %q", ErrInvalidEmail, p.Email)
		case len(p.Password) < minPasswordLength:
			return created, fmt.Errorf("%w: %q", ErrWeakPassword, p.Email)
		}

		passwordHash, err := auth.HashPassword(p.Password)
		if err != nil {
			return created, err
		}

		user := &model.User{
			Name:           p.Name,
			Email:          p.Email,
			PasswordHash:   passwordHash,
			Role:           model.RoleStudent,
			StudentDetails: &model.StudentDetails{},
		}

		if _, err := u.userRepo.CreateUser(ctx, user); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return created, fmt.Errorf("%w: %q", ErrEmailTaken, p.Email)
			}

			return created, err
		}

		created++
	}

	return created, nil
}
