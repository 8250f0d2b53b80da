package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuiter/tuiter/internal/domain/entity"
)

func TestToReactionResponse(t *testing.T) {
	tests := []struct {
		name     string
		reaction *entity.Reaction
		want     string
	}{
		{
			name:     "like with bare user id",
			reaction: &entity.Reaction{ID: "r1", Kind: entity.ReactionLike, UserID: "u1", TuitID: "t1"},
			want:     `{"_id":"r1","tuit":"t1","likedBy":"u1"}`,
		},
		{
			name:     "dislike with bare user id",
			reaction: &entity.Reaction{ID: "r2", Kind: entity.ReactionDislike, UserID: "u1", TuitID: "t1"},
			want:     `{"_id":"r2","tuit":"t1","dislikedBy":"u1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(ToReactionResponse(tt.reaction))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestToReactionResponse_PopulatedUser(t *testing.T) {
	reaction := &entity.Reaction{
		ID: "r3", Kind: entity.ReactionDislike, UserID: "u1", TuitID: "t1",
		User: &entity.User{ID: "u1", Username: "alice"},
	}

	body, err := json.Marshal(ToReactionResponse(reaction))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.NotContains(t, got, "likedBy")
	dislikedBy, ok := got["dislikedBy"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", dislikedBy["username"])
}
