package httpx_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestWindowLimiter(t *testing.T) {
	t.Run("admits up to limit then rejects", func(t *testing.T) {
		clock := newFakeClock()
		l := httpx.NewWindowLimiter(5, time.Minute, clock)

		for i := range 5 {
			d := l.Allow("1.2.3.4")
			require.True(t, d.Allowed, "attempt %d", i+1)
			require.Equal(t, 4-i, d.Remaining)
			clock.Advance(time.Second)
		}

		d := l.Allow("1.2.3.4")
		require.False(t, d.Allowed)
		require.Equal(t, 0, d.Remaining)
		require.Equal(t, 55*time.Second, d.Reset)
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := httpx.NewWindowLimiter(1, time.Minute, newFakeClock())
		require.True(t, l.Allow("a").Allowed)
		require.False(t, l.Allow("a").Allowed)
		require.True(t, l.Allow("b").Allowed)
	})

	t.Run("rejections are not counted", func(t *testing.T) {
		clock := newFakeClock()
		l := httpx.NewWindowLimiter(2, time.Minute, clock)

		require.True(t, l.Allow("a").Allowed)
		clock.Advance(30 * time.Second)
		require.True(t, l.Allow("a").Allowed)

		for range 10 {
			clock.Advance(time.Second)
			require.False(t, l.Allow("a").Allowed)
		}

		// first admitted attempt is now exactly one window old
		clock.Advance(20 * time.Second)
		require.True(t, l.Allow("a").Allowed)
	})

	t.Run("sliding window readmits after expiry", func(t *testing.T) {
		clock := newFakeClock()
		l := httpx.NewWindowLimiter(3, time.Minute, clock)
		for range 3 {
			require.True(t, l.Allow("a").Allowed)
		}
		require.False(t, l.Allow("a").Allowed)

		clock.Advance(time.Minute)
		d := l.Allow("a")
		require.True(t, d.Allowed)
		require.Equal(t, 2, d.Remaining)
	})

	t.Run("sweep drops expired keys", func(t *testing.T) {
		clock := newFakeClock()
		l := httpx.NewWindowLimiter(3, time.Minute, clock)
		l.Allow("a")
		clock.Advance(30 * time.Second)
		l.Allow("b")
		require.Equal(t, 2, l.Len())

		clock.Advance(31 * time.Second)
		require.Equal(t, 1, l.Sweep())
		require.Equal(t, 1, l.Len())

		clock.Advance(time.Minute)
		require.Equal(t, 1, l.Sweep())
		require.Zero(t, l.Len())
	})
}

func TestLoginLimit(t *testing.T) {
	clock := newFakeClock()
	var events bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&events, nil))

	h := httpx.LoginLimit(httpx.NewWindowLimiter(5, time.Minute, clock), logger, nil)(okHandler())

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.7:5555"
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	for i := range 5 {
		rec := login()
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
		require.Equal(t, "5", rec.Header().Get("RateLimit-Limit"))
	}
	require.Empty(t, events.String())

	rec := login()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("RateLimit-Remaining"))
	require.Equal(t, "60", rec.Header().Get("Retry-After"))

	var body httpx.MessageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, httpx.LoginLimitMessage, body.Message)

	line := events.String()
	require.Contains(t, line, `msg="To Many Requests"`)
	require.Contains(t, line, "method=POST")
	require.Contains(t, line, "url=/auth/login")
	require.Contains(t, line, "origin=http://localhost:3000")
	require.Contains(t, line, "ip=10.0.0.7")

	clock.Advance(time.Minute)
	require.Equal(t, http.StatusOK, login().Code)
}

func TestLoginLimitIgnoresSpoofedForwardingHeaders(t *testing.T) {
	clock := newFakeClock()
	h := httpx.LoginLimit(httpx.NewWindowLimiter(5, time.Minute, clock), nil, httpx.ClientIPKeyExtractor(false))(okHandler())

	admitted := 0
	for i := range 50 {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "203.0.113.7:4444"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.0.0.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("10.0.1.%d", i))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			admitted++
		}
		if i == 5 {
			require.Equal(t, http.StatusTooManyRequests, rec.Code, "6th attempt from one socket")
		}
	}
	require.Equal(t, 5, admitted)
}

func TestLoginLimitBehindTrustedProxy(t *testing.T) {
	clock := newFakeClock()
	h := httpx.LoginLimit(httpx.NewWindowLimiter(1, time.Minute, clock), nil, httpx.ClientIPKeyExtractor(true))(okHandler())

	attempt := func(client string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:443"
		req.Header.Set("X-Forwarded-For", client)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, attempt("198.51.100.1"))
	require.Equal(t, http.StatusTooManyRequests, attempt("198.51.100.1"))
	require.Equal(t, http.StatusOK, attempt("198.51.100.2"))
}
