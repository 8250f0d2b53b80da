package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	handler "github.com/tuiter/tuiter/internal/handler/http"
	"github.com/tuiter/tuiter/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testServer struct {
	engine    *gin.Engine
	users     *mocks.MockUserUsecase
	tuits     *mocks.MockTuitUsecase
	reactions *mocks.MockReactionUsecase
}

func newTestServer() *testServer {
	s := &testServer{
		users:     mocks.NewMockUserUsecase(),
		tuits:     &mocks.MockTuitUsecase{},
		reactions: &mocks.MockReactionUsecase{},
	}
	s.engine = gin.New()
	handler.NewRouter(s.users, s.tuits, s.reactions, handler.RouterOptions{}).SetupRoutes(s.engine)
	return s
}

// do sends a request, logged in as the mock user when auth is true.
func (s *testServer) do(method, path string, body interface{}, auth bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth {
		req.Header.Set("Authorization", "Bearer "+s.users.MockAccessToken)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	w := s.do(http.MethodGet, "/health", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
