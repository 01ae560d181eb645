package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campushq/college-portal-api/internal/model"
)

// NotificationRepository defines the interface for student notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) (*model.Notification, error)

	// ListNotificationsForStudent returns notifications addressed to the
	// given student.
	ListNotificationsForStudent(ctx context.Context, studentID string) ([]*model.Notification, error)
}

const notificationCollection = "notifications"

type notificationMongoRepository struct {
	db *mongo.Database
}

// NewNotificationMongoRepository creates a new MongoDB repository for
// notifications.
func NewNotificationMongoRepository(db *mongo.Database) NotificationRepository {
	return &notificationMongoRepository{db: db}
}

func (r *notificationMongoRepository) CreateNotification(
	ctx context.Context,
	notification *model.Notification,
) (*model.Notification, error) {
	notification.CreatedAt = time.Now()

	result, err := r.db.Collection(notificationCollection).InsertOne(ctx, notification)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		notification.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return notification, nil
}

func (r *notificationMongoRepository) ListNotificationsForStudent(
	ctx context.Context,
	studentID string,
) ([]*model.Notification, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(notificationCollection).Find(ctx, bson.M{"student_ids": studentID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []*model.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}
