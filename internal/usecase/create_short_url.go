package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// CreateShortURL очищает входной URL, создаёт запись и собирает короткую ссылку.
// Если BASE_URL не настроен, используется requestBase вида scheme://host.
func (u *URLUsecase) CreateShortURL(ctx context.Context, rawURL, ownerID, requestBase string) (*model.ShortenResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	rawURL = strings.Trim(rawURL, `"'`)

	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	record, err := u.service.CreateShortURL(ctx, model.URL(rawURL), strings.TrimSpace(ownerID))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
		}
		u.logger.Error("failed to create short URL",
			zap.String("original_url", rawURL),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	base := u.cfg.BaseURL.String()
	if base == "" {
		base = requestBase
	}

	shortURL, err := url.JoinPath(base, record.ShortCode.String())
	if err != nil {
		u.logger.Error("failed to build short URL",
			zap.String("base_url", base),
			zap.String("code", record.ShortCode.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: failed to build short URL: %w", ErrServiceUnavailable, err)
	}

	return &model.ShortenResult{
		Code:     record.ShortCode,
		ShortURL: shortURL,
	}, nil
}
