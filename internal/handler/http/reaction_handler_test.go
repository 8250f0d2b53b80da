package http_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	"github.com/tuiter/tuiter/internal/usecase"
)

func TestToggle_Success(t *testing.T) {
	for _, kind := range []entity.ReactionKind{entity.ReactionLike, entity.ReactionDislike} {
		t.Run(string(kind), func(t *testing.T) {
			s := newTestServer()
			s.reactions.On("Toggle", mock.Anything, kind, "u1", "t1").Return(&entity.Stats{}, nil).Once()

			w := s.do(http.MethodPut, fmt.Sprintf("/api/users/u1/%ss/t1", kind), nil, false)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Empty(t, w.Body.String())
			s.reactions.AssertExpectations(t)
		})
	}
}

func TestToggle_ResolvesMe(t *testing.T) {
	s := newTestServer()
	s.reactions.On("Toggle", mock.Anything, entity.ReactionLike, "mock-user-id", "t1").Return(&entity.Stats{Likes: 1, LikedByMe: true}, nil).Once()

	w := s.do(http.MethodPut, "/api/users/me/likes/t1", nil, true)

	assert.Equal(t, http.StatusOK, w.Code)
	s.reactions.AssertExpectations(t)
}

func TestToggle_MeWithoutSession(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodPut, "/api/users/me/likes/t1", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
	s.reactions.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Every toggle failure looks the same to the client.
func TestToggle_FailuresCollapseToNotFound(t *testing.T) {
	failures := []error{
		contract.ErrTuitNotFound,
		fmt.Errorf("%w: connection reset", usecase.ErrOperationFailed),
		errors.New("anything else"),
	}
	for _, failure := range failures {
		t.Run(failure.Error(), func(t *testing.T) {
			s := newTestServer()
			s.reactions.On("Toggle", mock.Anything, entity.ReactionDislike, "u1", "t1").Return(nil, failure).Once()

			w := s.do(http.MethodPut, "/api/users/u1/dislikes/t1", nil, false)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Empty(t, w.Body.String())
		})
	}
}

func TestListTuitsReactedByUser(t *testing.T) {
	s := newTestServer()
	tuits := []*entity.Tuit{{ID: "t1", Tuit: "hello"}, {ID: "t2", Tuit: "world"}}
	s.reactions.On("ListTuitsReactedByUser", mock.Anything, entity.ReactionLike, "mock-user-id").Return(tuits, nil).Once()

	w := s.do(http.MethodGet, "/api/users/me/likes", nil, true)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "t1", got[0]["_id"])
	assert.Equal(t, "world", got[1]["tuit"])
}

func TestListTuitsReactedByUser_StoreFailure(t *testing.T) {
	s := newTestServer()
	s.reactions.On("ListTuitsReactedByUser", mock.Anything, entity.ReactionDislike, "u1").Return(nil, errors.New("timeout")).Once()

	w := s.do(http.MethodGet, "/api/users/u1/dislikes", nil, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListReactors(t *testing.T) {
	s := newTestServer()
	reactions := []*entity.Reaction{{
		ID:     "r1",
		Kind:   entity.ReactionDislike,
		UserID: "u1",
		TuitID: "t1",
		User:   &entity.User{ID: "u1", Username: "alice"},
	}}
	s.reactions.On("ListReactorsForTuit", mock.Anything, entity.ReactionDislike, "t1").Return(reactions, nil).Once()

	w := s.do(http.MethodGet, "/api/tuits/t1/dislikes", nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "t1", got[0]["tuit"])
	dislikedBy, ok := got[0]["dislikedBy"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", dislikedBy["username"])
}

func TestReact(t *testing.T) {
	s := newTestServer()
	created := &entity.Reaction{ID: "r1", Kind: entity.ReactionLike, UserID: "u1", TuitID: "t1"}
	s.reactions.On("React", mock.Anything, entity.ReactionLike, "u1", "t1").Return(created, nil).Once()

	w := s.do(http.MethodPost, "/api/users/u1/likes/t1", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"_id":"r1","tuit":"t1","likedBy":"u1"}`, w.Body.String())
}

func TestReact_Duplicate(t *testing.T) {
	s := newTestServer()
	s.reactions.On("React", mock.Anything, entity.ReactionLike, "u1", "t1").Return(nil, contract.ErrDuplicateReaction).Once()

	w := s.do(http.MethodPost, "/api/users/u1/likes/t1", nil, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUnreact(t *testing.T) {
	s := newTestServer()
	s.reactions.On("Unreact", mock.Anything, entity.ReactionDislike, "u1", "t1").Return(int64(1), nil).Once()

	w := s.do(http.MethodDelete, "/api/users/u1/undislikes/t1", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())
}

func TestUnreact_NothingToDelete(t *testing.T) {
	s := newTestServer()
	s.reactions.On("Unreact", mock.Anything, entity.ReactionLike, "u1", "t1").Return(int64(0), nil).Once()

	w := s.do(http.MethodDelete, "/api/users/u1/unlikes/t1", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
}
