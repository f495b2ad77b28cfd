//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/learnquest-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/learnquest-backend/internal/app"
	authpkg "github.com/heartmarshall/learnquest-backend/internal/auth"
	"github.com/heartmarshall/learnquest-backend/internal/config"
	"github.com/heartmarshall/learnquest-backend/internal/domain"
	"github.com/heartmarshall/learnquest-backend/internal/metrics"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testProgression mirrors the production defaults.
func testProgression() config.ProgressionConfig {
	return config.ProgressionConfig{
		QuizXP:          10,
		CheckInXP:       10,
		DedupWindow:     time.Second,
		WeeklyXPTarget:  300,
		BadgeThresholds: domain.DefaultBadgeThresholds,
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	m := metrics.New()

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	services := app.NewServices(logger, pool, testProgression(), m)
	handler := app.NewRouter(app.RouterDeps{
		Logger:   logger,
		Services: services,
		Checks:   app.HealthChecks(pool, services),
		Tokens:   jwtMgr,
		Metrics:  m,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,Idempotency-Key",
		},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// createLearner seeds a user and returns it with a valid access token.
func (ts *testServer) createLearner(t *testing.T, opts ...testhelper.UserOption) (domain.User, string) {
	t.Helper()

	u := testhelper.SeedUser(t, ts.Pool, opts...)
	token, err := ts.jwt.GenerateAccessToken(u.ID)
	require.NoError(t, err)
	return u, token
}

// tokenFor issues an access token for an arbitrary user id.
func (ts *testServer) tokenFor(t *testing.T, id uuid.UUID) string {
	t.Helper()

	token, err := ts.jwt.GenerateAccessToken(id)
	require.NoError(t, err)
	return token
}

// request sends a JSON request and decodes a JSON object response.
// headers are key/value pairs.
func (ts *testServer) request(t *testing.T, method, path, token string, body any, headers ...string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	}
	return resp.StatusCode, result
}

// num reads a JSON number field as int.
func num(t *testing.T, m map[string]any, key string) int {
	t.Helper()

	v, ok := m[key].(float64)
	require.True(t, ok, "expected number at %q, got %v", key, m[key])
	return int(v)
}

// strs reads a JSON array of strings.
func strs(t *testing.T, m map[string]any, key string) []string {
	t.Helper()

	raw, ok := m[key].([]any)
	require.True(t, ok, "expected array at %q, got %v", key, m[key])
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		require.True(t, ok)
		out = append(out, s)
	}
	return out
}
