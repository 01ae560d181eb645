package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushq/college-portal-api/internal/mailer"
	"github.com/campushq/college-portal-api/internal/model"
	"github.com/campushq/college-portal-api/internal/repository"
)

// NotificationUsecase defines notification fan-out and retrieval.
type NotificationUsecase interface {
	// SendNotification stores a notification for the given students and,
	// when a mailer is configured, emails each recipient best-effort.
	SendNotification(ctx context.Context, message string, studentIDs []string) (*model.Notification, error)

	ListNotificationsForStudent(ctx context.Context, studentID string) ([]*model.Notification, error)
}

type notificationUsecase struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	mailer           *mailer.Mailer
	logger           *zerolog.Logger
}

// NewNotificationUsecase creates a new instance of NotificationUsecase. The
// mailer may be nil, in which case fan-out is store-only.
func NewNotificationUsecase(
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	mailer *mailer.Mailer,
	logger *zerolog.Logger,
) NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		logger:           logger,
	}
}

func (u *notificationUsecase) SendNotification(
	ctx context.Context,
	message string,
	studentIDs []string,
) (*model.Notification, error) {
	notification, err := u.notificationRepo.CreateNotification(ctx, &model.Notification{
		Message:    message,
		StudentIDs: studentIDs,
	})
	if err != nil {
		return nil, err
	}

	// Email delivery is a side channel; the notification is already stored,
	// so mail failures are logged and swallowed.
	if u.mailer != nil {
		students, err := u.userRepo.GetUsersByIDs(ctx, studentIDs)
		if err != nil {
			u.logger.Warn().Err(err).Msg("failed to load notification recipients")
			return notification, nil
		}

		emails := make([]string, 0, len(students))
		for _, s := range students {
			emails = append(emails, s.Email)
		}

		if len(emails) > 0 {
			if err := u.mailer.SendSimple(emails, "College notification", message); err != nil {
				u.logger.Warn().Err(err).Msg("failed to email notification")
			}
		}
	}

	return notification, nil
}

func (u *notificationUsecase) ListNotificationsForStudent(
	ctx context.Context,
	studentID string,
) ([]*model.Notification, error) {
	return u.notificationRepo.ListNotificationsForStudent(ctx, studentID)
}
