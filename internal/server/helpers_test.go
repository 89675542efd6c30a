package server

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jonathan/brandcraft/internal/config"
	"github.com/jonathan/brandcraft/internal/db"
	"github.com/jonathan/brandcraft/internal/server/ratelimit"
	"github.com/jonathan/brandcraft/internal/synth"
	"github.com/jonathan/brandcraft/internal/types"
)

var testOrigins = []string{"http://localhost:5500"}

// newTestDB opens a migrated SQLite database in a temp directory.
func newTestDB(t *testing.T) *db.DB {
	t.Helper()
	ctx := context.Background()

	database, err := db.OpenSQLite(ctx, filepath.Join(t.TempDir(), "brandcraft.db"))
	require.NoError(t, err)
	t.Cleanup(database.Close)
	require.NoError(t, database.Migrate(ctx))
	return database
}

func testPasswordConfig(t *testing.T) *config.PasswordConfig {
	t.Helper()
	cfg, err := config.NewPasswordConfig(10, "test-pepper")
	require.NoError(t, err)
	return cfg
}

// newTestServer builds a server on a fresh SQLite database. A nil rate limit config
// disables limiting.
func newTestServer(t *testing.T, rl *ratelimit.Config) (*Server, *db.DB) {
	t.Helper()
	database := newTestDB(t)

	if rl == nil {
		rl = ratelimit.NewConfig(ratelimit.Settings{Enabled: false})
	}

	s, err := New(Config{
		Port:           0,
		DB:             database,
		Engine:         synth.MustNew(synth.WithRand(rand.New(rand.NewPCG(7, 11)))),
		JWT:            &config.JWTConfig{Secret: testJWTSecret, ExpirationHours: 24},
		Password:       testPasswordConfig(t),
		RateLimit:      rl,
		AllowedOrigins: testOrigins,
		Logger:         zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, database
}

// doJSON sends a request through the full middleware chain.
func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:4321"
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

// registerAndLogin creates a regular account and returns its token and record.
func registerAndLogin(t *testing.T, s *Server, username string) (string, *db.User) {
	t.Helper()
	email := username + "@example.com"

	w := doJSON(t, s, http.MethodPost, "/api/register", "", types.RegisterRequest{
		Username: username, Email: email, Password: "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := decodeBody[db.User](t, w)

	return login(t, s, email, "password123"), &user
}

func login(t *testing.T, s *Server, email, password string) string {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/login", "", types.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody[types.TokenResponse](t, w).AccessToken
}

// adminToken creates an administrator and returns its token.
func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	_, _, err := s.userService.EnsureAdmin(context.Background(), "root", "root@example.com", "rootpassword")
	require.NoError(t, err)
	return login(t, s, "root@example.com", "rootpassword")
}
