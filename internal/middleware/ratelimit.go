package middleware

import (
	"context"
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitMessage   = "Too many requests, please try again later."
)

// Decision результат проверки одного запроса в окне
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter считает запросы по ключу в фиксированном окне
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

func decide(count int64, limit int, resetAfter time.Duration) Decision {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:    count <= int64(limit),
		Limit:      limit,
		Remaining:  remaining,
		ResetAfter: resetAfter,
	}
}

// RedisLimiter фиксированное окно на INCR и PEXPIRE, общее для всех экземпляров сервиса
type RedisLimiter struct {
	client redis.Cmdable
	window time.Duration
	limit  int
}

func NewRedisLimiter(client redis.Cmdable, window time.Duration, limit int) *RedisLimiter {
	return &RedisLimiter{client: client, window: window, limit: limit}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	key = rateLimitKeyPrefix + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count request: %w", err)
	}

	// Окно открывается первым запросом; ключ без срока жизни тоже получает окно
	resetAfter := pttl.Val()
	if incr.Val() == 1 || resetAfter < 0 {
		if err := l.client.PExpire(ctx, key, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to set rate limit window: %w", err)
		}
		resetAfter = l.window
	}

	return decide(incr.Val(), l.limit, resetAfter), nil
}

type memoryWindow struct {
	count   int64
	resetAt time.Time
}

// MemoryLimiter фиксированное окно в памяти одного процесса
type MemoryLimiter struct {
	mu      sync.Mutex
	windows map[string]*memoryWindow
	window  time.Duration
	limit   int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, limit int) *MemoryLimiter {
	return &MemoryLimiter{
		windows: make(map[string]*memoryWindow),
		window:  window,
		limit:   limit,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		l.sweep(now)
		w = &memoryWindow{resetAt: now.Add(l.window)}
		l.windows[key] = w
	}
	w.count++

	return decide(w.count, l.limit, w.resetAt.Sub(now)), nil
}

// sweep удаляет истёкшие окна, чтобы карта не росла бесконечно
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}

// RateLimiter ограничивает запросы по IP клиента. Ошибки хранилища счётчиков
// пропускают запрос.
func RateLimiter(limiter Limiter, m *metrics.Metrics, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			decision, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				m.CollaboratorFailed(metrics.ComponentLimiter, "allow")
				logger.Warn("Rate limiter unavailable, letting request through",
					zap.String("remote_ip", ip),
					zap.Error(err),
				)
				next.ServeHTTP(w, r)
				return
			}

			resetSeconds := int(math.Ceil(decision.ResetAfter.Seconds()))
			w.Header().Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(resetSeconds))

			if !decision.Allowed {
				m.RateLimited.Inc()
				logger.Debug("Request rate limited", zap.String("remote_ip", ip))
				w.Header().Set("Retry-After", strconv.Itoa(resetSeconds))
				writeMessage(w, r, http.StatusTooManyRequests, rateLimitMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP берёт адрес из RemoteAddr, который chi RealIP уже заменил на адрес клиента
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
