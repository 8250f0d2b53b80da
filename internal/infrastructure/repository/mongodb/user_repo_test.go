package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
)

func TestMongoUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create duplicate username", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		err := repo.CreateUser(context.Background(), &entity.User{ID: "u1", Username: "alice"})

		assert.ErrorIs(mt, err, contract.ErrDuplicateUser)
	})

	mt.Run("get by username", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuiter.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "u1"},
			{Key: "username", Value: "alice"},
			{Key: "password_hash", Value: "hash"},
		}))

		user, err := repo.GetUserByUsername(context.Background(), "alice")

		require.NoError(mt, err)
		assert.Equal(mt, "u1", user.ID)
		assert.Equal(mt, "hash", user.PasswordHash)
	})

	mt.Run("get missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "tuiter.users", mtest.FirstBatch))

		_, err := repo.GetUserByID(context.Background(), "u1")

		assert.ErrorIs(mt, err, contract.ErrUserNotFound)
	})

	mt.Run("update missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		_, err := repo.UpdateUser(context.Background(), "u1", map[string]interface{}{"email": "a@b.c"})

		assert.ErrorIs(mt, err, contract.ErrUserNotFound)
	})

	mt.Run("delete by username", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		n, err := repo.DeleteUsersByUsername(context.Background(), "alice")

		require.NoError(mt, err)
		assert.Equal(mt, int64(2), n)
	})
}
