package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r *Repository) CreateURL(ctx context.Context, record model.URLRecord) (*model.URLRecord, error) {
	created, err := r.underlying.Insert(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create URL: %w", err)
	}

	return created, nil
}
