package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"meeting-action-extractor/config"
	"meeting-action-extractor/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newRouter(requestsPerMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(&mockLogger{}, config.RateLimitConfig{RequestsPerMin: requestsPerMin})

	r := gin.New()
	r.GET("/ping", mw.RateLimit(), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, ip string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Forwarded-For", ip)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitAllows(t *testing.T) {
	r := newRouter(600) // burst of 60, plenty for a single request

	if code := doRequest(r, "10.0.0.1"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestRateLimitThrottles(t *testing.T) {
	r := newRouter(10) // burst of 1

	if code := doRequest(r, "10.0.0.2"); code != http.StatusOK {
		t.Fatalf("first request must pass, got %d", code)
	}
	if code := doRequest(r, "10.0.0.2"); code != http.StatusTooManyRequests {
		t.Fatalf("second burst request must be throttled, got %d", code)
	}
}

func TestRateLimitKeyedByIP(t *testing.T) {
	r := newRouter(10) // burst of 1

	if code := doRequest(r, "10.0.0.3"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	// A different client is unaffected by the first client's bucket
	if code := doRequest(r, "10.0.0.4"); code != http.StatusOK {
		t.Fatalf("expected 200 for distinct ip, got %d", code)
	}
}
