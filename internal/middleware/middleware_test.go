package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	"github.com/BruksfildServices01/service-marketplace/internal/models"
	"github.com/BruksfildServices01/service-marketplace/internal/revocation"
	"github.com/BruksfildServices01/service-marketplace/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type revokedStore struct {
	revoked bool
	err     error
}

func (s revokedStore) RevokeBefore(context.Context, uint, time.Time) error { return nil }

func (s revokedStore) IsRevoked(context.Context, uint, time.Time) (bool, error) {
	return s.revoked, s.err
}

func newRouter(tokens middleware.TokenParser, revoked revocation.Store, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(tokens, revoked)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		actor := middleware.Actor(c)
		c.JSON(http.StatusOK, gin.H{"id": actor.ID, "role": actor.Role, "email": actor.Email})
	})
	r.GET("/private", handlers...)
	return r
}

func do(r http.Handler, header string) (*httptest.ResponseRecorder, httperr.HTTPError) {
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body httperr.HTTPError
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func issue(t *testing.T, m *token.Manager, u *models.User) string {
	t.Helper()
	raw, err := m.Issue(u)
	require.NoError(t, err)
	return "Bearer " + raw
}

var customer = &models.User{ID: 4, Email: "ana@example.com", Role: models.RoleCustomer}

// ======================================================
// AUTH
// ======================================================

func TestAuth_ValidToken(t *testing.T) {
	m := token.NewManager("secret", 0)
	r := newRouter(m, revocation.Noop{})

	w, _ := do(r, issue(t, m, customer))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":4,"role":"customer","email":"ana@example.com"}`, w.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newRouter(token.NewManager("secret", 0), nil)

	w, body := do(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_authorization_header", body.Code)
}

func TestAuth_InvalidTokens(t *testing.T) {
	m := token.NewManager("secret", 0)
	r := newRouter(m, nil)

	other := token.NewManager("other", 0)

	cases := map[string]string{
		"no scheme":    "abc.def.ghi",
		"basic scheme": "Basic dXNlcjpwYXNz",
		"empty bearer": "Bearer   ",
		"garbage":      "Bearer not-a-jwt",
		"wrong secret": issue(t, other, customer),
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w, body := do(r, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "invalid_token", body.Code)
		})
	}
}

func TestAuth_NoSecretRejectsEverything(t *testing.T) {
	signed := issue(t, token.NewManager("secret", 0), customer)
	r := newRouter(token.NewManager("", 0), nil)

	w, body := do(r, signed)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "auth_not_configured", body.Code)
}

func TestAuth_RevokedToken(t *testing.T) {
	m := token.NewManager("secret", 0)
	r := newRouter(m, revokedStore{revoked: true})

	w, body := do(r, issue(t, m, customer))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", body.Code)
}

func TestAuth_RevocationStoreDownLetsRequestThrough(t *testing.T) {
	m := token.NewManager("secret", 0)
	r := newRouter(m, revokedStore{err: errors.New("redis down")})

	w, _ := do(r, issue(t, m, customer))

	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// ROLES
// ======================================================

func TestRequireRole(t *testing.T) {
	m := token.NewManager("secret", 0)
	r := newRouter(m, nil, middleware.RequireRole(models.RoleProvider, models.RoleAdmin))

	w, body := do(r, issue(t, m, customer))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", body.Code)

	w, _ = do(r, issue(t, m, &models.User{ID: 1, Email: "root@example.com", Role: models.RoleAdmin}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHasRole(t *testing.T) {
	assert.True(t, middleware.HasRole("admin", "provider", "admin"))
	assert.False(t, middleware.HasRole("customer", "provider", "admin"))
	assert.False(t, middleware.HasRole("", "provider"))
}

// ======================================================
// RATE LIMIT
// ======================================================

type counterCache struct {
	counts  map[string]int64
	expires int
	err     error
}

func (c *counterCache) Get(context.Context, string) (string, error) { return "", nil }

func (c *counterCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (c *counterCache) Incr(_ context.Context, key string) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.counts[key]++
	return c.counts[key], nil
}

func (c *counterCache) Expire(context.Context, string, time.Duration) error {
	c.expires++
	return nil
}

func (c *counterCache) Delete(context.Context, string) error { return nil }

func (c *counterCache) Close() error { return nil }

func limited(c *counterCache, limit int) *gin.Engine {
	r := gin.New()
	r.POST("/login", middleware.RateLimiter(c, "login", limit, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func post(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	return w
}

func TestRateLimiter(t *testing.T) {
	c := &counterCache{counts: map[string]int64{}}
	r := limited(c, 2)

	assert.Equal(t, http.StatusNoContent, post(r).Code)

	w := post(r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = post(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")

	assert.Equal(t, 1, c.expires, "window is set on the first hit only")
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	c := &counterCache{counts: map[string]int64{}, err: errors.New("redis down")}
	r := limited(c, 1)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, post(r).Code)
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := gin.New()
	r.POST("/login", middleware.RateLimiter(nil, "login", 1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, post(r).Code)
	}
}

// ======================================================
// REQUEST ID
// ======================================================

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(middleware.HeaderRequestID))
}

// ======================================================
// CORS
// ======================================================

func corsRouter(origins ...string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CORSMiddleware(middleware.CORSConfig{
		AllowedOrigins: origins,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	r.GET("/services", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func corsRequest(r http.Handler, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/services", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_ListedOriginGetsCredentials(t *testing.T) {
	w := corsRequest(corsRouter("https://app.example.com/"), http.MethodGet, "https://app.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestCORS_UnlistedOriginIsNotReflected(t *testing.T) {
	r := corsRouter("https://app.example.com")

	w := corsRequest(r, http.MethodGet, "https://evil.example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))

	w = corsRequest(r, http.MethodOptions, "https://evil.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_WildcardNeverSendsCredentials(t *testing.T) {
	w := corsRequest(corsRouter("*"), http.MethodOptions, "https://anywhere.example.com")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
