package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dto "github.com/tuiter/tuiter/internal/handler/http/dto"
)

func TestSignup(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/auth/signup", dto.CreateUserRequest{Username: "alice", Password: "Password123!"}, false)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "mock_access_token", resp.AccessToken)
}

func TestSignup_UsernameTaken(t *testing.T) {
	s := newTestServer()
	s.users.ShouldDuplicateUser = true
	w := s.do(http.MethodPost, "/api/auth/signup", dto.CreateUserRequest{Username: "alice", Password: "Password123!"}, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "testuser", Password: "Password123!"}, false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogin_Fail(t *testing.T) {
	s := newTestServer()
	s.users.ShouldFailLogin = true
	w := s.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Username: "testuser", Password: "nope"}, false)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestProfile(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodPost, "/api/auth/profile", nil, false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/auth/profile", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestLogout(t *testing.T) {
	s := newTestServer()

	w := s.do(http.MethodPost, "/api/auth/logout", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"mock_access_token"}, s.users.LoggedOutTokens)

	s.users.ShouldFailLogout = true
	w = s.do(http.MethodPost, "/api/auth/logout", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}
