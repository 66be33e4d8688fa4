package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"hospital-portal/config"
	"hospital-portal/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = time.Minute
	limiterIdleThreshold   = 3 * time.Minute
)

type visitor struct {
	lim  *rate.Limiter
	seen time.Time
}

// RateLimiter keeps one token bucket per client IP for the login and signup forms.
type RateLimiter struct {
	log      *logrus.Logger
	mu       sync.Mutex
	visitors map[string]*visitor
	r        rate.Limit
	burst    int
	trusted  map[string]bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(log *logrus.Logger, cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		log:      log,
		visitors: make(map[string]*visitor),
		r:        rate.Limit(cfg.RPS),
		burst:    cfg.Burst,
		trusted:  make(map[string]bool, len(cfg.TrustedProxies)),
		stopChan: make(chan struct{}),
	}
	for _, ip := range cfg.TrustedProxies {
		rl.trusted[ip] = true
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopChan) })
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopChan:
			return
		case now := <-ticker.C:
			rl.evictIdle(now.Add(-limiterIdleThreshold))
		}
	}
}

func (rl *RateLimiter) evictIdle(cutoff time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	evicted := 0
	for ip, v := range rl.visitors {
		if v.seen.Before(cutoff) {
			delete(rl.visitors, ip)
			evicted++
		}
	}
	return evicted
}

func (rl *RateLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if v, ok := rl.visitors[ip]; ok {
		v.seen = time.Now()
		return v.lim
	}
	l := rate.NewLimiter(rl.r, rl.burst)
	rl.visitors[ip] = &visitor{lim: l, seen: time.Now()}
	return l
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := rl.clientIP(r)
		if !rl.get(ip).Allow() {
			rl.log.WithFields(logrus.Fields{"ip": ip, "path": r.URL.Path}).Warn("Rate limit exceeded")
			response.TooManyRequests(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP is the peer address, unless the peer is a trusted proxy. Then it is
// the rightmost X-Forwarded-For entry not added by a trusted proxy, since
// everything left of that is client supplied.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	remote := remoteHost(r)
	if !rl.trusted[remote] {
		return remote
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop != "" && !rl.trusted[hop] {
			return hop
		}
	}
	return remote
}

func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
