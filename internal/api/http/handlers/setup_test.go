package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/study-tracker/internal/api/http"
	"github.com/spec-kit/study-tracker/internal/api/route"
	"github.com/spec-kit/study-tracker/internal/auth"
	"github.com/spec-kit/study-tracker/internal/observability"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
)

const testSecret = "handlers-test-secret"

type testServer struct {
	app     *fiber.App
	tokens  *auth.TokenProvider
	protect Protection
	valid   *validate.Validator
	metrics *observability.Metrics
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := auth.NewTokenProvider(testSecret, time.Hour)
	require.NoError(t, err)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:  zap.NewNop(),
		Metrics: metrics,
		Timeout: 5 * time.Second,
	})

	return &testServer{
		app:     app,
		tokens:  tokens,
		protect: Protection{Authenticate: auth.NewAuthMiddleware(tokens, zap.NewNop()).Handle},
		valid:   validate.New(),
		metrics: metrics,
	}
}

func (s *testServer) register(t *testing.T, routes ...route.Route) {
	t.Helper()
	require.NoError(t, httptransport.NewRouter(s.app, zap.NewNop()).Register(routes...))
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	tok, _, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return tok
}

type response struct {
	status int
	body   map[string]any
	raw    string
}

func (s *testServer) do(t *testing.T, method, path, token string, payload any) response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := response{status: resp.StatusCode, raw: string(raw)}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out.body), string(raw))
	}
	return out
}

