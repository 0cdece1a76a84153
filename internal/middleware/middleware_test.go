package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
	"github.com/BruksfildServices01/cesta-amigo/internal/infra/sessions"
	"github.com/BruksfildServices01/cesta-amigo/internal/logger"
	"github.com/BruksfildServices01/cesta-amigo/internal/models"
	"github.com/BruksfildServices01/cesta-amigo/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAccounts map[uuid.UUID]*models.Profile

func (f fakeAccounts) FindByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := f[id]
	if !ok {
		return nil, profile.ErrNotFound
	}
	return p, nil
}

type authEnv struct {
	router   *gin.Engine
	tokens   *token.Issuer
	store    *sessions.MemoryStore
	accounts fakeAccounts
}

func newAuthEnv() authEnv {
	env := authEnv{
		router:   gin.New(),
		tokens:   token.NewIssuer("test-secret", time.Hour),
		store:    sessions.NewMemoryStore(),
		accounts: fakeAccounts{},
	}

	secured := env.router.Group("/api", AuthMiddleware(env.tokens, env.store, env.accounts, zerolog.Nop()))
	secured.GET("/me", func(c *gin.Context) {
		a := Actor(c)
		jti, _ := Session(c)
		c.JSON(http.StatusOK, gin.H{"user": a.UserID, "role": a.Role, "jti": jti})
	})
	secured.GET("/sellers", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return env
}

// issue cadastra uma conta ativa e devolve o token dela.
func (e authEnv) issue(t *testing.T, role profile.Role) (string, token.Claims, *models.Profile) {
	t.Helper()
	p := &models.Profile{UserID: uuid.New(), Role: string(role), Active: true}
	e.accounts[p.UserID] = p

	raw, claims, err := e.tokens.Issue(p.UserID, role)
	require.NoError(t, err)
	return raw, claims, p
}

func (e authEnv) do(method, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"error_code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	env := newAuthEnv()
	raw, claims, p := env.issue(t, profile.RoleVendedor)
	id := p.UserID

	w := env.do(http.MethodGet, "/api/me", raw)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id.String(), body["user"])
	assert.Equal(t, "vendedor", body["role"])
	assert.Equal(t, claims.ID, body["jti"])
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	env := newAuthEnv()

	w := env.do(http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_authorization_header", errorCode(t, w))

	w = env.do(http.MethodGet, "/api/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", errorCode(t, w))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, "invalid_authorization_header", errorCode(t, rec))
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	env := newAuthEnv()
	raw, claims, _ := env.issue(t, profile.RoleAdmin)

	require.NoError(t, env.store.Revoke(context.Background(), claims.ID, time.Hour))

	w := env.do(http.MethodGet, "/api/me", raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "token_revoked", errorCode(t, w))
}

func TestRequireAdmin(t *testing.T) {
	env := newAuthEnv()

	seller, _, _ := env.issue(t, profile.RoleVendedor)
	w := env.do(http.MethodGet, "/api/sellers", seller)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "admin_only", errorCode(t, w))

	admin, _, _ := env.issue(t, profile.RoleAdmin)
	w = env.do(http.MethodGet, "/api/sellers", admin)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_DeactivatedAccount(t *testing.T) {
	env := newAuthEnv()
	raw, _, p := env.issue(t, profile.RoleVendedor)

	require.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/me", raw).Code)

	p.Active = false
	w := env.do(http.MethodGet, "/api/me", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "account_disabled", errorCode(t, w))

	// conta apagada: o token deixa de valer
	delete(env.accounts, p.UserID)
	w = env.do(http.MethodGet, "/api/me", raw)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", errorCode(t, w))
}

func TestAuthMiddleware_RoleComesFromAccount(t *testing.T) {
	env := newAuthEnv()
	raw, _, p := env.issue(t, profile.RoleAdmin)

	// rebaixado depois do login
	p.Role = string(profile.RoleVendedor)
	w := env.do(http.MethodGet, "/api/sellers", raw)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "admin_only", errorCode(t, w))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_OpenListWithoutCredentials(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://qualquer.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://qualquer.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(3)

	r := gin.New()
	r.POST("/login", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit("10.0.0.1"))
	}
	assert.Equal(t, http.StatusTooManyRequests, hit("10.0.0.1"))
	assert.Equal(t, http.StatusOK, hit("10.0.0.2"))
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/clients/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/clients/"+uuid.NewString(), nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/clients/:id", "200")))

	problems, err := testutil.GatherAndLint(reg)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestRequestID(t *testing.T) {
	var seen string
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) {
		seen = c.GetString(logger.RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
	assert.True(t, strings.HasPrefix(w.Header().Get(RequestIDHeader), "abc"))
}
