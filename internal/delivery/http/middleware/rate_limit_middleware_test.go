package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-portal/config"

	"github.com/stretchr/testify/assert"
)

func newTestRateLimiter(t *testing.T, burst int) *RateLimiter {
	rl := NewRateLimiter(testLogger(), config.RateLimitConfig{RPS: 0.001, Burst: burst})
	t.Cleanup(rl.Stop)
	return rl
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	rl := newTestRateLimiter(t, 2)
	handler := rl.Limit(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login/admin", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiter_SeparateBucketsPerIP(t *testing.T) {
	rl := newTestRateLimiter(t, 1)
	handler := rl.Limit(okHandler)

	for _, addr := range []string{"10.0.0.1:1", "10.0.0.2:1"} {
		req := httptest.NewRequest(http.MethodPost, "/login/doctor", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, addr)
	}
}

func TestRateLimiter_EvictIdle(t *testing.T) {
	rl := newTestRateLimiter(t, 1)
	rl.get("10.0.0.1")
	rl.get("10.0.0.2")

	assert.Equal(t, 0, rl.evictIdle(time.Now().Add(-time.Minute)))
	assert.Equal(t, 2, rl.evictIdle(time.Now().Add(time.Minute)))
	assert.Empty(t, rl.visitors)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	rl := NewRateLimiter(testLogger(), config.RateLimitConfig{RPS: 1, Burst: 1})
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestRateLimiter_ClientIP(t *testing.T) {
	direct := newTestRateLimiter(t, 1)
	proxied := NewRateLimiter(testLogger(), config.RateLimitConfig{RPS: 1, Burst: 1, TrustedProxies: []string{"10.0.0.1", "10.0.0.2"}})
	t.Cleanup(proxied.Stop)

	tests := []struct {
		name      string
		rl        *RateLimiter
		remote    string
		forwarded string
		want      string
	}{
		{"direct peer", direct, "192.168.1.5:4321", "", "192.168.1.5"},
		{"spoofed header from untrusted peer", direct, "192.168.1.5:4321", "203.0.113.7", "192.168.1.5"},
		{"trusted proxy", proxied, "10.0.0.1:80", "203.0.113.7", "203.0.113.7"},
		{"client prepends a fake hop", proxied, "10.0.0.1:80", "1.2.3.4, 203.0.113.7", "203.0.113.7"},
		{"chained trusted proxies", proxied, "10.0.0.1:80", "203.0.113.7, 10.0.0.2", "203.0.113.7"},
		{"trusted proxy without header", proxied, "10.0.0.1:80", "", "10.0.0.1"},
		{"untrusted peer is not a proxy", proxied, "192.168.1.5:4321", "203.0.113.7", "192.168.1.5"},
		{"no port", direct, "unix-socket", "", "unix-socket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, tt.rl.clientIP(req))
		})
	}
}

func TestRateLimiter_RotatingForwardedForDoesNotBypass(t *testing.T) {
	rl := newTestRateLimiter(t, 2)
	handler := rl.Limit(okHandler)

	codes := make([]int, 0, 3)
	for _, spoofed := range []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"} {
		req := httptest.NewRequest(http.MethodPost, "/login/admin", nil)
		req.RemoteAddr = "192.168.1.5:4321"
		req.Header.Set("X-Forwarded-For", spoofed)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
