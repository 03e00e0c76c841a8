package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
	"go.uber.org/zap"
)

// URLService содержит бизнес-логику создания, разрешения и удаления коротких ссылок.
// Хранилище авторитетно; кэш и рейтинг поддерживаются по возможности и
// их сбои не ломают основную операцию.
type URLService struct {
	repo    URLRepository
	codes   *UniqueCodeGenerator
	cache   Cache
	ranker  Ranker
	cfg     *config.Config
	metrics *metrics.Metrics
	logger  *zap.Logger

	// deletes растёт после каждого удаления из хранилища
	deletes atomic.Uint64
}

// NewURLService создает новый экземпляр URLService
func NewURLService(
	repo URLRepository,
	cache Cache,
	ranker Ranker,
	cfg *config.Config,
	m *metrics.Metrics,
	logger *zap.Logger,
) *URLService {
	return &URLService{
		repo:    repo,
		codes:   NewUniqueCodeGenerator(NewCodeGenerator(), repo),
		cache:   cache,
		ranker:  ranker,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
	}
}

// CreateShortURL проверяет URL, получает свободный код и сохраняет запись.
// Кэш не заполняется: запись попадёт туда при первом разрешении.
func (s *URLService) CreateShortURL(ctx context.Context, originalURL model.URL, ownerID string) (*model.URLRecord, error) {
	if err := model.ValidateOriginalURL(string(originalURL)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	// Конкурентная вставка того же кода между проверкой и записью
	// отклоняется уникальным индексом, тогда код генерируется заново
	for attempt := 1; attempt <= s.cfg.Code.InsertAttempts; attempt++ {
		code, err := s.codes.Generate(ctx, s.cfg.Code.MaxAttempts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate unique code: %w", err)
		}

		record, err := s.repo.CreateURL(ctx, model.URLRecord{
			ShortCode:   code,
			OriginalURL: originalURL,
			OwnerID:     ownerID,
		})
		if err == nil {
			return record, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return nil, fmt.Errorf("failed to create URL: %w", err)
		}

		s.logger.Warn("Short code taken between check and insert",
			zap.String("code", code.String()),
			zap.Int("attempt", attempt))
	}

	return nil, fmt.Errorf("%w: duplicate key on insert after %d attempts", ErrExhausted, s.cfg.Code.InsertAttempts)
}

// FindByShortCode читает запись сначала из кэша, затем из хранилища
func (s *URLService) FindByShortCode(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	if record, ok := s.readCache(ctx, code); ok {
		s.metrics.CacheHits.Inc()
		s.incrementScore(ctx, code)
		return record, nil
	}
	s.metrics.CacheMisses.Inc()

	deletesBefore := s.deletes.Load()

	record, err := s.repo.GetURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to find URL: %w", err)
	}

	s.writeCache(ctx, record)

	// Удаление между чтением и записью в кэш могло оставить в кэше удалённый код
	if s.deletes.Load() != deletesBefore {
		if err := s.dropIfDeleted(ctx, code); err != nil {
			return nil, err
		}
	}

	s.incrementScore(ctx, code)
	s.evictOverflow(ctx)

	return record, nil
}

// DeleteURL удаляет запись из хранилища, затем чистит кэш и рейтинг
func (s *URLService) DeleteURL(ctx context.Context, code model.Code) error {
	if _, err := s.repo.DeleteByCode(ctx, code); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return fmt.Errorf("failed to delete URL: %w", err)
	}
	s.deletes.Add(1)

	if err := s.cache.Del(ctx, cache.Key(code)); err != nil {
		s.collaboratorFailed(metrics.ComponentCache, "del", code, err)
	}
	if err := s.ranker.RemoveMember(ctx, cache.RankingKey, string(code)); err != nil {
		s.collaboratorFailed(metrics.ComponentRanker, "remove_member", code, err)
	}

	return nil
}

// IncrementVisitCount увеличивает счётчик посещений.
// Отсутствие записи не является ошибкой.
func (s *URLService) IncrementVisitCount(ctx context.Context, code model.Code) error {
	matched, err := s.repo.IncrementVisitCount(ctx, code)
	if err != nil {
		return err
	}
	if !matched {
		s.logger.Warn("Visit recorded for unknown short code", zap.String("code", code.String()))
	}

	return nil
}

// GetURLStats читает запись напрямую из хранилища, в кэше счётчик посещений устаревает
func (s *URLService) GetURLStats(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	record, err := s.repo.GetURLByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
		}
		return nil, fmt.Errorf("failed to get URL stats: %w", err)
	}

	return record, nil
}

func (s *URLService) readCache(ctx context.Context, code model.Code) (*model.URLRecord, bool) {
	key := cache.Key(code)

	value, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.collaboratorFailed(metrics.ComponentCache, "get", code, err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var record model.URLRecord
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		s.logger.Warn("Dropping undecodable cache entry", zap.String("code", code.String()), zap.Error(err))
		if err := s.cache.Del(ctx, key); err != nil {
			s.collaboratorFailed(metrics.ComponentCache, "del", code, err)
		}
		return nil, false
	}

	return &record, true
}

// dropIfDeleted перепроверяет хранилище и убирает из кэша запись, удалённую во время чтения
func (s *URLService) dropIfDeleted(ctx context.Context, code model.Code) error {
	_, err := s.repo.GetURLByCode(ctx, code)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("failed to find URL: %w", err)
	}

	if err := s.cache.Del(ctx, cache.Key(code)); err != nil {
		s.collaboratorFailed(metrics.ComponentCache, "del", code, err)
	}
	return fmt.Errorf("%w: %s", ErrNotFound, code)
}

func (s *URLService) writeCache(ctx context.Context, record *model.URLRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Error("Failed to marshal record for cache", zap.String("code", record.ShortCode.String()), zap.Error(err))
		return
	}

	if err := s.cache.Set(ctx, cache.Key(record.ShortCode), string(data)); err != nil {
		s.collaboratorFailed(metrics.ComponentCache, "set", record.ShortCode, err)
	}
}

func (s *URLService) incrementScore(ctx context.Context, code model.Code) {
	if err := s.ranker.IncrementScore(ctx, cache.RankingKey, string(code)); err != nil {
		s.collaboratorFailed(metrics.ComponentRanker, "increment_score", code, err)
	}
}

// evictOverflow удерживает рейтинг в пределах top-N и удаляет из кэша вытесненные коды
func (s *URLService) evictOverflow(ctx context.Context) {
	topN := s.cfg.Cache.TopN

	top, err := s.ranker.Top(ctx, cache.RankingKey, topN)
	if err != nil {
		s.collaboratorFailed(metrics.ComponentRanker, "top", "", err)
		return
	}
	if len(top) <= topN {
		return
	}

	evicted, err := s.ranker.RemoveLowest(ctx, cache.RankingKey, len(top)-topN)
	if err != nil {
		s.collaboratorFailed(metrics.ComponentRanker, "remove_lowest", "", err)
		return
	}
	if len(evicted) == 0 {
		return
	}

	keys := make([]string, 0, len(evicted))
	for _, member := range evicted {
		keys = append(keys, cache.Key(model.Code(member)))
	}
	if err := s.cache.Del(ctx, keys...); err != nil {
		s.collaboratorFailed(metrics.ComponentCache, "del", "", err)
	}

	s.metrics.Evictions.Add(float64(len(evicted)))
	s.logger.Debug("Evicted short codes from cache", zap.Strings("codes", evicted))
}

func (s *URLService) collaboratorFailed(component, operation string, code model.Code, err error) {
	s.metrics.CollaboratorFailed(component, operation)
	s.logger.Warn("Best-effort collaborator call failed",
		zap.String("component", component),
		zap.String("operation", operation),
		zap.String("code", code.String()),
		zap.Error(err))
}
