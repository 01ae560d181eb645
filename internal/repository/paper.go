package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campushq/college-portal-api/internal/model"
)

// PaperRepository defines the interface for course paper operations.
type PaperRepository interface {
	CreatePaper(ctx context.Context, paper *model.Paper) (*model.Paper, error)
	GetPaperByCode(ctx context.Context, code string) (*model.Paper, error)
	ListPapers(ctx context.Context) ([]*model.Paper, error)
}

const paperCollection = "papers"

type paperMongoRepository struct {
	db *mongo.Database
}

// NewPaperMongoRepository creates a new MongoDB repository for papers. Paper
// codes carry a unique index.
func NewPaperMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) PaperRepository {
	collection := db.Collection(paperCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create paper indexes")
	}

	return &paperMongoRepository{db: db}
}

func (r *paperMongoRepository) CreatePaper(ctx context.Context, paper *model.Paper) (*model.Paper, error) {
	now := time.Now()
	paper.CreatedAt = now
	paper.UpdatedAt = now

	result, err := r.db.Collection(paperCollection).InsertOne(ctx, paper)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		paper.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return paper, nil
}

func (r *paperMongoRepository) GetPaperByCode(ctx context.Context, code string) (*model.Paper, error) {
	result := r.db.Collection(paperCollection).FindOne(ctx, bson.M{"code": code})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var paper model.Paper
	if err := result.Decode(&paper); err != nil {
		return nil, err
	}

	return &paper, nil
}

func (r *paperMongoRepository) ListPapers(ctx context.Context) ([]*model.Paper, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "code", Value: 1}})

	cursor, err := r.db.Collection(paperCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var papers []*model.Paper
	if err := cursor.All(ctx, &papers); err != nil {
		return nil, err
	}

	return papers, nil
}
