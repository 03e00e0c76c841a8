package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

func (r *Repository) GetURLByCode(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	record, err := r.underlying.FindOne(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get URL by code: %w", err)
	}

	return record, nil
}
