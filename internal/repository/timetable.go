package repository

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campushq/college-portal-api/internal/model"
)

// TimetableRepository defines the interface for semester timetables.
type TimetableRepository interface {
	// UpsertTimetable replaces the schedule for a semester, creating the
	// document when none exists yet.
	UpsertTimetable(ctx context.Context, timetable *model.Timetable) error
	GetTimetableBySemester(ctx context.Context, semester int) (*model.Timetable, error)
}

const timetableCollection = "timetable"

type timetableMongoRepository struct {
	db *mongo.Database
}

// NewTimetableMongoRepository creates a new MongoDB repository for
// timetables with one document per semester.
func NewTimetableMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) TimetableRepository {
	collection := db.Collection(timetableCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "semester", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create timetable indexes")
	}

	return &timetableMongoRepository{db: db}
}

func (r *timetableMongoRepository) UpsertTimetable(ctx context.Context, timetable *model.Timetable) error {
	_, err := r.db.Collection(timetableCollection).UpdateOne(
		ctx,
		bson.M{"semester": timetable.Semester},
		bson.M{"$set": bson.M{
			"semester":   timetable.Semester,
			"schedule":   timetable.Schedule,
			"updated_at": time.Now(),
		}},
		options.UpdateOne().SetUpsert(true),
	)
	return err
}

func (r *timetableMongoRepository) GetTimetableBySemester(ctx context.Context, semester int) (*model.Timetable, error) {
	result := r.db.Collection(timetableCollection).FindOne(ctx, bson.M{"semester": semester})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var timetable model.Timetable
	if err := result.Decode(&timetable); err != nil {
		return nil, err
	}

	return &timetable, nil
}
