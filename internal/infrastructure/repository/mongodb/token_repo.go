package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const revokedTokensCollection = "revoked_tokens"

type revokedTokenDTO struct {
	ID        string    `bson:"_id"`
	RevokedAt time.Time `bson:"revoked_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// TokenRepository keeps revoked access token ids until the tokens expire.
// It backs logout when no Redis is configured.
type TokenRepository struct {
	Collection *mongo.Collection
	now        func() time.Time
}

// check in compile time if TokenRepository implements ITokenDenylist
var _ contract.ITokenDenylist = (*TokenRepository)(nil)

func NewTokenRepository(db *mongo.Database) *TokenRepository {
	return &TokenRepository{
		Collection: db.Collection(revokedTokensCollection),
		now:        time.Now,
	}
}

// EnsureIndexes lets MongoDB expire entries once the token would have expired.
func (r *TokenRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create revoked token index: %w", err)
	}
	return nil
}

func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	now := r.now().UTC()
	dto := revokedTokenDTO{ID: tokenID, RevokedAt: now, ExpiresAt: now.Add(ttl)}
	_, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": tokenID},
		bson.M{"$set": dto},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked ignores entries the TTL monitor has not removed yet.
func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"_id":        tokenID,
		"expires_at": bson.M{"$gt": r.now().UTC()},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check revoked token: %w", err)
	}
	return count > 0, nil
}
