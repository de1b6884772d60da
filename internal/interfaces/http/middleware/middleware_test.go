package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyra-atelier/storefront/internal/config"
	"github.com/zyra-atelier/storefront/internal/domain/catalog"
	"github.com/zyra-atelier/storefront/internal/domain/session"
	"github.com/zyra-atelier/storefront/internal/pkg/logger"
	"github.com/zyra-atelier/storefront/internal/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Zyra Atelier"
	cfg.Session.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Session.TTL = time.Hour
	cfg.Session.CookieName = "session_token"
	cfg.Session.HeaderName = "X-Session-Token"
	cfg.Security.CORSAllowedOrigins = []string{"https://zyra.luxury", "*.zyra.dev"}
	cfg.Security.CORSAllowedMethods = []string{"GET", "POST"}
	cfg.Security.CORSAllowedHeaders = []string{"Content-Type", "X-Session-Token"}
	return cfg
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(requestIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
	assert.Equal(t, w.Header().Get(requestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Body.String())
}

func TestRequestSizeLimit(t *testing.T) {
	r := gin.New()
	r.Use(RequestSizeLimit(8))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(testConfig()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://zyra.luxury", true},
		{"https://shop.zyra.dev", true},
		{"https://evilzyra.dev", false},
		{"https://example.com", false},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", tt.origin)
		w := serve(r, req)

		if tt.allowed {
			assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		} else {
			assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), tt.origin)
		}
	}

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://zyra.luxury")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Session-Token")
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders("Zyra Atelier"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "Zyra Atelier", w.Header().Get("Server"))
}

func TestTimeout(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})
	r.GET("/fast", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusGatewayTimeout, serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)).Code)
}

func rateLimitedRouter(limiter Limiter, perMinute int) *gin.Engine {
	r := gin.New()
	r.Use(RateLimit(limiter, perMinute, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestMemoryRateLimit(t *testing.T) {
	r := rateLimitedRouter(NewMemoryLimiter(60, 2), 60)

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestRedisRateLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	r := rateLimitedRouter(NewRedisLimiter(client, 2), 2)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)

	mr.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func TestRateLimitFailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	r := rateLimitedRouter(NewRedisLimiter(client, 1), 1)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
}

func sessionRouter(t *testing.T) (*gin.Engine, *config.Config, *token.Manager, *session.Service) {
	t.Helper()
	cfg := testConfig()
	store, err := catalog.Default()
	require.NoError(t, err)

	svc := session.NewService(session.NewMemoryStore(time.Hour), store, logger.Discard(), 0)
	tokens := token.NewManager(cfg)

	r := gin.New()
	r.Use(Session(cfg, tokens, svc, logger.Discard()))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, SessionIDFromContext(c)) })
	return r, cfg, tokens, svc
}

func TestSessionIssuesTokenWhenMissing(t *testing.T) {
	r, cfg, tokens, _ := sessionRouter(t)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	signed := w.Header().Get(cfg.Session.HeaderName)
	require.NotEmpty(t, signed)
	id, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
	assert.Contains(t, w.Header().Get("Set-Cookie"), cfg.Session.CookieName+"=")
}

func TestSessionReusesValidToken(t *testing.T) {
	r, cfg, tokens, svc := sessionRouter(t)

	state, err := svc.Start(context.Background())
	require.NoError(t, err)
	signed, err := tokens.Generate(state.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cfg.Session.HeaderName, signed)
	w := serve(r, req)
	assert.Equal(t, state.ID, w.Body.String())
	assert.Empty(t, w.Header().Get(cfg.Session.HeaderName))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.Session.CookieName, Value: signed})
	w = serve(r, req)
	assert.Equal(t, state.ID, w.Body.String())
}

func TestSessionReplacesUnknownSession(t *testing.T) {
	r, cfg, tokens, _ := sessionRouter(t)

	signed, err := tokens.Generate("expired-session")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cfg.Session.HeaderName, signed)
	w := serve(r, req)

	assert.NotEqual(t, "expired-session", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(cfg.Session.HeaderName))
}

func TestSessionReplacesForgedToken(t *testing.T) {
	r, cfg, _, _ := sessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(cfg.Session.HeaderName, "forged")
	w := serve(r, req)

	assert.NotEmpty(t, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(cfg.Session.HeaderName))
}
