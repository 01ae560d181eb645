package usecase

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campushq/college-portal-api/internal/auth"
	"github.com/campushq/college-portal-api/internal/config"
	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/repository"
)

// AuthUsecase defines the registration and login flows.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)

	// Login authenticates a user and returns the user, a signed session
	// token and the token TTL for the cookie.
	Login(ctx context.Context, params LoginParams) (*model.User, string, time.Duration, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
	Remember bool
}

// Sentinel errors mapped to HTTP statuses by the handlers. Unknown email and
// wrong password both collapse into ErrInvalidCredentials so responses never
// reveal which one it was.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("teacher account pending approval")
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	cfg      *config.Config
	logger   *zerolog.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	cfg *config.Config,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		cfg:      cfg,
		logger:   logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	// Ordered validation; the first failure wins.
	switch {
	case params.Name == "" || params.Email == "" || params.Password == "":
		return nil, ErrMissingFields
	case !emailPattern.MatchString(params.Email):
		return nil, ErrInvalidEmail
	case len(params.Password) < minPasswordLength:
		return nil, ErrWeakPassword
	case !params.Role.Registrable():
		return nil, ErrInvalidRole
	}

	// Pre-insert existence check for the clean conflict message. A racing
	// insert that slips past it still hits the unique email index below.
	if _, err := u.userRepo.GetUserByEmail(ctx, params.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	passwordHash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Role:         params.Role,
	}

	switch params.Role {
	case model.RoleStudent:
		user.StudentDetails = &model.StudentDetails{}
	case model.RolePendingTeacher:
		user.TeacherDetails = &model.TeacherDetails{
			Subjects: []string{},
			JoinedAt: time.Now(),
			Status:   model.TeacherStatusPending,
		}
	}

	user, err = u.userRepo.CreateUser(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*model.User, string, time.Duration, error) {
	if params.Email == "" || params.Password == "" {
		return nil, "", 0, ErrMissingFields
	}

	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", 0, ErrInvalidCredentials
		}

		return nil, "", 0, err
	}

	if ok, err := auth.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", 0, err
	} else if !ok {
		return nil, "", 0, ErrInvalidCredentials
	}

	// The account is known to exist at this point, so a specific denial is
	// acceptable.
	if user.Role == model.RolePendingTeacher {
		return nil, "", 0, ErrPendingApproval
	}

	ttl := u.cfg.SessionTTL
	if params.Remember {
		ttl = u.cfg.RememberTTL
	}

	token, err := u.jwtAuth.Issue(user, ttl)
	if err != nil {
		return nil, "", 0, err
	}

	// Best-effort analytics update. The token is already issued, so a
	// failure here must not fail the login.
	if err := u.userRepo.RecordLogin(ctx, user.ID.Hex()); err != nil {
		u.logger.Warn().Err(err).Str("user_id", user.ID.Hex()).Msg("failed to record login metadata")
	}

	return user, token, ttl, nil
}
