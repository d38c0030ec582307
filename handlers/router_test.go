package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexipro-backend/models"
	"lexipro-backend/provider"
	"lexipro-backend/repository"
	"lexipro-backend/service"
	"lexipro-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

type testServer struct {
	router      *gin.Engine
	provider    *provider.MockProvider
	auth        *service.AuthService
	lawyerToken string
	clientToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	m := provider.NewMockProvider()
	assistant := service.NewAssistantService(
		service.WithChatModel(m),
		service.WithFillMasker(m),
		service.WithPredictionGenerator(m),
		service.WithDocumentGenerator(m),
		service.WithStoryGenerator(m),
	)

	auth := service.NewAuthService(
		service.WithUserStore(repository.NewMemoryUserRepository()),
		service.WithJWTSecret("handler-test-secret"),
		service.WithTokenTTL(time.Hour),
	)

	st, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	documents := service.NewDocumentService(
		service.WithDocumentStore(repository.NewMemoryDocumentRepository()),
		service.WithStorage(st),
	)

	srv := &testServer{
		router: NewRouter(RouterConfig{
			Assistant: assistant,
			Auth:      auth,
			Documents: documents,
		}),
		provider: m,
		auth:     auth,
	}

	for _, u := range []service.CreateUserRequest{
		{Email: "sarah@lexipro.test", Password: "lawyer-pw", Name: "Sarah Mitchell", Role: models.RoleLawyer},
		{Email: "john@example.test", Password: "client-pw", Name: "John Smith", Role: models.RoleClient},
	} {
		_, err := auth.CreateUser(ctx, u)
		require.NoError(t, err)
	}
	srv.lawyerToken = srv.login(t, "sarah@lexipro.test", "lawyer-pw")
	srv.clientToken = srv.login(t, "john@example.test", "client-pw")
	return srv
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	res, err := s.auth.Login(context.Background(), email, password)
	require.NoError(t, err)
	return res.Token
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		_ = json.NewEncoder(&buf).Encode(v)
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success, w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
