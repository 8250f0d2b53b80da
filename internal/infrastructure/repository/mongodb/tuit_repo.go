package mongodb

import (
	"context"
	"fmt"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TuitRepository represents the MongoDB implementation of the ITuitRepository interface.
type TuitRepository struct {
	collection *mongo.Collection
}

var _ contract.ITuitRepository = (*TuitRepository)(nil)

// NewTuitRepository creates and returns a new TuitRepository instance.
func NewTuitRepository(db *mongo.Database) *TuitRepository {
	return &TuitRepository{
		collection: db.Collection(tuitsCollection),
	}
}

// withAuthor appends the stages that resolve postedBy into postedByUser.
func withAuthor(pipeline mongo.Pipeline) mongo.Pipeline {
	return append(pipeline,
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "postedBy",
			"foreignField": "_id",
			"as":           "postedByUser",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$postedByUser",
			"preserveNullAndEmptyArrays": true,
		}}},
	)
}

func (r *TuitRepository) find(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.Tuit, error) {
	cursor, err := r.collection.Aggregate(ctx, withAuthor(pipeline))
	if err != nil {
		return nil, fmt.Errorf("failed to query tuits: %w", err)
	}
	defer cursor.Close(ctx)

	tuits := make([]*entity.Tuit, 0)
	if err := cursor.All(ctx, &tuits); err != nil {
		return nil, fmt.Errorf("failed to decode tuits: %w", err)
	}
	return tuits, nil
}

// CreateTuit inserts a new tuit record into the database.
func (r *TuitRepository) CreateTuit(ctx context.Context, tuit *entity.Tuit) error {
	if _, err := r.collection.InsertOne(ctx, tuit); err != nil {
		return fmt.Errorf("failed to create tuit: %w", err)
	}
	return nil
}

// GetTuitByID retrieves a single tuit by its unique id.
func (r *TuitRepository) GetTuitByID(ctx context.Context, tuitID string) (*entity.Tuit, error) {
	tuits, err := r.find(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": tuitID}}},
		bson.D{{Key: "$limit", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	if len(tuits) == 0 {
		return nil, contract.ErrTuitNotFound
	}
	return tuits[0], nil
}

// GetTuits returns all tuits, newest first.
func (r *TuitRepository) GetTuits(ctx context.Context) ([]*entity.Tuit, error) {
	return r.find(ctx, mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.M{"postedOn": -1}}},
	})
}

func (r *TuitRepository) GetTuitsByUser(ctx context.Context, userID string) ([]*entity.Tuit, error) {
	return r.find(ctx, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"postedBy": userID}}},
		bson.D{{Key: "$sort", Value: bson.M{"postedOn": -1}}},
	})
}

func (r *TuitRepository) UpdateTuit(ctx context.Context, tuitID string, updates map[string]interface{}) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": tuitID}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update tuit: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrTuitNotFound
	}
	return nil
}

// UpdateStats overwrites the stats sub-document as a whole.
func (r *TuitRepository) UpdateStats(ctx context.Context, tuitID string, stats entity.Stats) error {
	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": tuitID}, bson.M{"$set": bson.M{"stats": stats}})
	if err != nil {
		return fmt.Errorf("failed to update tuit stats: %w", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrTuitNotFound
	}
	return nil
}

func (r *TuitRepository) DeleteTuit(ctx context.Context, tuitID string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": tuitID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tuit: %w", err)
	}
	return res.DeletedCount, nil
}
