//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/entry"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/journal"
	"github.com/glyphdict/glyphdict-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/glyphdict/glyphdict-backend/internal/auth"
	"github.com/glyphdict/glyphdict-backend/internal/config"
	"github.com/glyphdict/glyphdict-backend/internal/service/catalog"
	"github.com/glyphdict/glyphdict-backend/internal/transport/middleware"
	"github.com/glyphdict/glyphdict-backend/internal/transport/rest"
)

const adminLogin = "moderator"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	tokens *authpkg.TokenManager
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	entryRepo := entry.New(pool)
	journalRepo := journal.New(pool)
	txm := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(logger, entryRepo, journalRepo, txm)

	tokens := authpkg.NewTokenManager("e2e-secret-key-0123456789abcdef!", "glyphdict-test", time.Hour)
	allowlist := authpkg.NewAllowlist([]string{adminLogin})

	router := rest.NewRouter(rest.RouterDeps{
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		Admin:   rest.NewAdminHandler(catalogSvc, logger),
		Health:  rest.NewHealthHandler(pool, "e2e"),
		Logger:  logger,
		CORS:    config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowedHeaders: "Authorization,Content-Type"},
		Auth:    middleware.Auth(tokens, allowlist),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		tokens: tokens,
	}
}

func (ts *testServer) token(t *testing.T, login string) string {
	t.Helper()
	token, err := ts.tokens.GenerateToken(login)
	require.NoError(t, err)
	return token
}

// doJSON issues a request with an optional bearer token and JSON body, and
// decodes the JSON response into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

// items extracts the "items" array from a listing response.
func items(t *testing.T, body map[string]any) []any {
	t.Helper()
	list, ok := body["items"].([]any)
	require.True(t, ok, "expected items array in response")
	return list
}
