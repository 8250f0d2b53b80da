package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	tuitsCollection    = "tuits"
	likesCollection    = "likes"
	dislikesCollection = "dislikes"
)

// reactionLayout describes where one reaction kind is stored and which
// field references the reacting user.
type reactionLayout struct {
	collection string
	userField  string
}

var reactionLayouts = map[entity.ReactionKind]reactionLayout{
	entity.ReactionLike:    {collection: likesCollection, userField: "likedBy"},
	entity.ReactionDislike: {collection: dislikesCollection, userField: "dislikedBy"},
}

// reactionDocument is the stored shape of a like or dislike, plus the
// fields filled in by $lookup.
type reactionDocument struct {
	ID         string       `bson:"_id"`
	TuitID     string       `bson:"tuit"`
	LikedBy    string       `bson:"likedBy,omitempty"`
	DislikedBy string       `bson:"dislikedBy,omitempty"`
	CreatedAt  time.Time    `bson:"createdAt"`
	User       *entity.User `bson:"user,omitempty"`
	Tuit       *entity.Tuit `bson:"tuitDoc,omitempty"`
}

// ReactionRepository is the MongoDB implementation of IReactionRepository
// for a single reaction kind.
type ReactionRepository struct {
	kind       entity.ReactionKind
	userField  string
	collection *mongo.Collection
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// NewReactionRepository creates the repository for the likes or dislikes collection.
func NewReactionRepository(db *mongo.Database, kind entity.ReactionKind) *ReactionRepository {
	layout, ok := reactionLayouts[kind]
	if !ok {
		panic(fmt.Sprintf("mongodb: unknown reaction kind %q", kind))
	}
	return &ReactionRepository{
		kind:       kind,
		userField:  layout.userField,
		collection: db.Collection(layout.collection),
	}
}

func (r *ReactionRepository) Kind() entity.ReactionKind {
	return r.kind
}

// EnsureIndexes creates the (tuit, user) index. With unique set, a second
// reaction of the same kind by the same user on the same tuit is rejected.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context, unique bool) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "tuit", Value: 1}, {Key: r.userField, Value: 1}},
		Options: options.Index().SetUnique(unique),
	}
	if _, err := r.collection.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create %s index: %w", r.kind, err)
	}
	return nil
}

// FindByTuit returns every reaction on a tuit with the reacting user resolved.
func (r *ReactionRepository) FindByTuit(ctx context.Context, tuitID string) ([]*entity.Reaction, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"tuit": tuitID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   r.userField,
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
	return r.aggregate(ctx, pipeline)
}

// FindByUser returns every reaction by a user with the tuit and its author
// resolved. Reactions on deleted tuits come back with a nil Tuit.
func (r *ReactionRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Reaction, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{r.userField: userID}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         tuitsCollection,
			"localField":   "tuit",
			"foreignField": "_id",
			"as":           "tuitDoc",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$tuitDoc",
			"preserveNullAndEmptyArrays": true,
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         usersCollection,
			"localField":   "tuitDoc.postedBy",
			"foreignField": "_id",
			"as":           "tuitDoc.postedByUser",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$tuitDoc.postedByUser",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
	return r.aggregate(ctx, pipeline)
}

func (r *ReactionRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.Reaction, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to query %ss: %w", r.kind, err)
	}
	defer cursor.Close(ctx)

	var docs []reactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %ss: %w", r.kind, err)
	}
	reactions := make([]*entity.Reaction, 0, len(docs))
	for i := range docs {
		reactions = append(reactions, r.toEntity(&docs[i]))
	}
	return reactions, nil
}

// Find retrieves the reaction of this kind by a user on a tuit, or nil when there is none.
func (r *ReactionRepository) Find(ctx context.Context, userID, tuitID string) (*entity.Reaction, error) {
	var doc reactionDocument
	filter := bson.M{"tuit": tuitID, r.userField: userID}

	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve %s: %w", r.kind, err)
	}
	return r.toEntity(&doc), nil
}

// Create inserts a new reaction record. It does not look for an existing one.
func (r *ReactionRepository) Create(ctx context.Context, userID, tuitID string) (*entity.Reaction, error) {
	doc := bson.M{
		"_id":       uuid.New().String(),
		"tuit":      tuitID,
		r.userField: userID,
		"createdAt": time.Now().UTC(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, contract.ErrDuplicateReaction
		}
		return nil, fmt.Errorf("failed to create %s record: %w", r.kind, err)
	}
	return &entity.Reaction{
		ID:        doc["_id"].(string),
		Kind:      r.kind,
		UserID:    userID,
		TuitID:    tuitID,
		CreatedAt: doc["createdAt"].(time.Time),
	}, nil
}

// Delete removes the reaction of this kind by a user on a tuit.
func (r *ReactionRepository) Delete(ctx context.Context, userID, tuitID string) (int64, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"tuit": tuitID, r.userField: userID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete %s: %w", r.kind, err)
	}
	return res.DeletedCount, nil
}

// Count counts the reactions of this kind on a tuit.
func (r *ReactionRepository) Count(ctx context.Context, tuitID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"tuit": tuitID})
	if err != nil {
		return 0, fmt.Errorf("failed to count %ss: %w", r.kind, err)
	}
	return count, nil
}

func (r *ReactionRepository) toEntity(doc *reactionDocument) *entity.Reaction {
	reaction := &entity.Reaction{
		ID:        doc.ID,
		Kind:      r.kind,
		TuitID:    doc.TuitID,
		CreatedAt: doc.CreatedAt,
		User:      doc.User,
		Tuit:      doc.Tuit,
	}
	if r.kind == entity.ReactionLike {
		reaction.UserID = doc.LikedBy
	} else {
		reaction.UserID = doc.DislikedBy
	}
	// $lookup into a nested path leaves an empty tuitDoc behind when the
	// tuit itself is gone.
	if reaction.Tuit != nil && reaction.Tuit.ID == "" {
		reaction.Tuit = nil
	}
	if reaction.User != nil && reaction.User.ID == "" {
		reaction.User = nil
	}
	return reaction
}
