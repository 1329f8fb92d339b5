package httpx

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aussiebroadwan/technotes/pkg/slogx"
)

// LoginLimitMessage is returned to clients that exceed the login limit.
const LoginLimitMessage = "Za dużo logowani z danego IP proszę spróbować jeszcze raz za 60 sekund"

// Default login limit: 5 attempts per minute per client address.
const (
	DefaultLoginLimit  = 5
	DefaultLoginWindow = time.Minute
)

// Clock abstracts time for the window limiter.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// WindowDecision is the outcome of a single WindowLimiter.Allow call.
type WindowDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// Reset is the time until the oldest counted attempt leaves the window.
	Reset time.Duration
}

// WindowLimiter is a sliding-window log limiter. Each key may have at most
// limit admitted attempts within any window. Rejected attempts are not
// counted.
type WindowLimiter struct {
	limit  int
	window time.Duration
	clock  Clock

	mu   sync.Mutex
	hits map[string][]time.Time
}

// NewWindowLimiter returns a limiter admitting limit attempts per window.
// A nil clock uses SystemClock.
func NewWindowLimiter(limit int, window time.Duration, clock Clock) *WindowLimiter {
	if clock == nil {
		clock = SystemClock
	}
	return &WindowLimiter{
		limit:  limit,
		window: window,
		clock:  clock,
		hits:   make(map[string][]time.Time),
	}
}

// Allow records an attempt for key if it fits in the window.
func (l *WindowLimiter) Allow(key string) WindowDecision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.prune(key, now)
	d := WindowDecision{Limit: l.limit}

	if len(hits) < l.limit {
		hits = append(hits, now)
		l.hits[key] = hits
		d.Allowed = true
	}

	d.Remaining = max(l.limit-len(hits), 0)
	if len(hits) > 0 {
		d.Reset = hits[0].Add(l.window).Sub(now)
	}
	return d
}

// prune drops expired attempts for key. Must hold mu.
func (l *WindowLimiter) prune(key string, now time.Time) []time.Time {
	hits := l.hits[key]
	cutoff := now.Add(-l.window)

	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	hits = hits[i:]

	if len(hits) == 0 {
		delete(l.hits, key)
		return nil
	}
	l.hits[key] = hits
	return hits
}

// Sweep removes every key whose attempts have all expired and reports how
// many keys were dropped.
func (l *WindowLimiter) Sweep() int {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	before := len(l.hits)
	for key := range l.hits {
		l.prune(key, now)
	}
	return before - len(l.hits)
}

// Len reports the number of tracked keys.
func (l *WindowLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.hits)
}

// LoginLimit guards a route with l, keyed by the client IP that key resolves
// (IPKeyExtractor when nil). Every rejection is written to events, which is
// expected to be an append-only log.
func LoginLimit(l *WindowLimiter, events *slog.Logger, key KeyExtractor) Middleware {
	if key == nil {
		key = IPKeyExtractor
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := key(r)
			d := l.Allow(ip)

			resetSec := int(math.Ceil(d.Reset.Seconds()))
			w.Header().Set("RateLimit-Limit", strconv.Itoa(d.Limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(resetSec))

			if d.Allowed {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Retry-After", strconv.Itoa(max(resetSec, 1)))

			if events != nil {
				events.Warn("To Many Requests",
					"message", LoginLimitMessage,
					"method", r.Method,
					"url", r.URL.String(),
					"origin", r.Header.Get("Origin"),
					"ip", ip,
				)
			}
			slogx.FromContext(r.Context()).Warn("login rate limit exceeded", "ip", ip)

			WriteMessage(w, http.StatusTooManyRequests, LoginLimitMessage)
		})
	}
}
