package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{}, assert.AnError
}

func limiterBackends(t *testing.T, window time.Duration, limit int) map[string]Limiter {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return map[string]Limiter{
		"redis":  NewRedisLimiter(client, window, limit),
		"memory": NewMemoryLimiter(window, limit),
	}
}

func TestLimiter_FixedWindow(t *testing.T) {
	for name, limiter := range limiterBackends(t, time.Minute, 3) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			for i := 1; i <= 3; i++ {
				decision, err := limiter.Allow(ctx, "10.0.0.1")
				require.NoError(t, err)
				assert.True(t, decision.Allowed, "request %d", i)
				assert.Equal(t, 3-i, decision.Remaining)
				assert.Equal(t, 3, decision.Limit)
				assert.Positive(t, decision.ResetAfter)
			}

			decision, err := limiter.Allow(ctx, "10.0.0.1")
			require.NoError(t, err)
			assert.False(t, decision.Allowed)
			assert.Zero(t, decision.Remaining)

			other, err := limiter.Allow(ctx, "10.0.0.2")
			require.NoError(t, err)
			assert.True(t, other.Allowed)
		})
	}
}

func TestRedisLimiter_WindowExpires(t *testing.T) {
	// Arrange
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRedisLimiter(client, time.Second, 1)
	ctx := context.Background()

	first, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, first.Allowed)

	second, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, second.Allowed)

	// Act
	server.FastForward(2 * time.Second)
	third, err := limiter.Allow(ctx, "10.0.0.1")

	// Assert
	require.NoError(t, err)
	assert.True(t, third.Allowed)
	assert.True(t, server.Exists(rateLimitKeyPrefix+"10.0.0.1"))
}

func TestMemoryLimiter_WindowExpires(t *testing.T) {
	// Arrange
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(time.Minute, 1)
	limiter.now = func() time.Time { return now }

	first, _ := limiter.Allow(context.Background(), "10.0.0.1")
	second, _ := limiter.Allow(context.Background(), "10.0.0.1")

	// Act
	now = now.Add(time.Minute)
	third, err := limiter.Allow(context.Background(), "10.0.0.1")

	// Assert
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.False(t, second.Allowed)
	assert.True(t, third.Allowed)
	assert.Len(t, limiter.windows, 1)
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	// Arrange
	m := metrics.NewNop()
	handler := RateLimiter(NewMemoryLimiter(time.Minute, 2), m, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/shorten", nil)
		req.RemoteAddr = "192.0.2.1:54321"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	// Act
	first := send()
	second := send()
	third := send()

	// Assert
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("RateLimit-Remaining"))
	assert.Equal(t, http.StatusCreated, second.Code)

	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"message":"Too many requests, please try again later."}`, third.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	// Arrange
	m := metrics.NewNop()
	handler := RateLimiter(failingLimiter{}, m, zap.NewNop())(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}))

	req := httptest.NewRequest(http.MethodPost, "/shorten", nil)
	rec := httptest.NewRecorder()

	// Act
	handler.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("RateLimit-Limit"))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.CollaboratorFailures.WithLabelValues(metrics.ComponentLimiter, "allow")))
}

func TestRedisLimiter_RedisDown(t *testing.T) {
	// Arrange
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	limiter := NewRedisLimiter(client, time.Minute, 1)

	// Act
	_, err := limiter.Allow(context.Background(), "10.0.0.1")

	// Assert
	assert.Error(t, err)
}
