package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tuiter/tuiter/internal/domain/contract"
	"github.com/tuiter/tuiter/internal/domain/entity"
	dto "github.com/tuiter/tuiter/internal/handler/http/dto"
)

func TestGetTuits(t *testing.T) {
	s := newTestServer()
	s.tuits.On("GetTuits", mock.Anything).Return([]*entity.Tuit{{ID: "t1", Tuit: "hi"}}, nil).Once()

	w := s.do(http.MethodGet, "/api/tuits", nil, false)

	require.Equal(t, http.StatusOK, w.Code)
	var got []entity.Tuit
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Tuit)
}

func TestGetTuit_NotFound(t *testing.T) {
	s := newTestServer()
	s.tuits.On("GetTuitByID", mock.Anything, "missing").Return(nil, contract.ErrTuitNotFound).Once()

	w := s.do(http.MethodGet, "/api/tuits/missing", nil, false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTuit_Me(t *testing.T) {
	s := newTestServer()
	s.tuits.On("CreateTuit", mock.Anything, "mock-user-id", mock.MatchedBy(func(t *entity.Tuit) bool {
		return t.Tuit == "first post"
	})).Return(&entity.Tuit{ID: "t1", Tuit: "first post", PostedByID: "mock-user-id"}, nil).Once()

	w := s.do(http.MethodPost, "/api/users/me/tuits", dto.CreateTuitRequest{Tuit: "first post"}, true)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"postedById":"mock-user-id"`)
	s.tuits.AssertExpectations(t)
}

func TestCreateTuit_EmptyBody(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodPost, "/api/users/u1/tuits", map[string]string{}, false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.tuits.AssertNotCalled(t, "CreateTuit", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetTuitsByUser(t *testing.T) {
	s := newTestServer()
	s.tuits.On("GetTuitsByUser", mock.Anything, "u1").Return([]*entity.Tuit{}, nil).Once()

	w := s.do(http.MethodGet, "/api/users/u1/tuits", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateTuit_IgnoresStats(t *testing.T) {
	s := newTestServer()
	s.tuits.On("UpdateTuit", mock.Anything, "t1", map[string]interface{}{"tuit": "edited"}).Return(nil).Once()

	body := map[string]interface{}{"tuit": "edited", "stats": map[string]int{"likes": 99}}
	w := s.do(http.MethodPut, "/api/tuits/t1", body, false)

	assert.Equal(t, http.StatusOK, w.Code)
	s.tuits.AssertExpectations(t)
}

func TestDeleteTuit(t *testing.T) {
	s := newTestServer()
	s.tuits.On("DeleteTuit", mock.Anything, "t1").Return(int64(1), nil).Once()

	w := s.do(http.MethodDelete, "/api/tuits/t1", nil, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())
}
