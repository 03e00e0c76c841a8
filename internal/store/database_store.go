package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationErrCode = "23505"

const recordColumns = `id::text, short_code, original_url, owner_id, visit_count, created_at, updated_at`

// DatabaseStore реализует хранилище записей в PostgreSQL
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// FindOne читает запись по короткому коду
func (ds *DatabaseStore) FindOne(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM urls
		WHERE short_code = $1
	`

	record, err := scanRecord(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read from database: %w", err)
	}

	return record, nil
}

// Insert вставляет новую запись; уникальный индекс по short_code
// превращает повторную вставку кода в ErrAlreadyExists
func (ds *DatabaseStore) Insert(ctx context.Context, record model.URLRecord) (*model.URLRecord, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	query := `
		INSERT INTO urls (id, short_code, original_url, owner_id, visit_count)
		VALUES ($1::uuid, $2, $3, $4, $5)
		RETURNING ` + recordColumns

	created, err := scanRecord(ds.pool.QueryRow(ctx, query,
		record.ID,
		string(record.ShortCode),
		string(record.OriginalURL),
		record.OwnerID,
		max(record.VisitCount, 0),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("key %s: %w", record.ShortCode, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to insert into database: %w", err)
	}

	return created, nil
}

// FindOneAndDelete удаляет запись одним запросом и возвращает её прежнее состояние
func (ds *DatabaseStore) FindOneAndDelete(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	query := `
		DELETE FROM urls
		WHERE short_code = $1
		RETURNING ` + recordColumns

	deleted, err := scanRecord(ds.pool.QueryRow(ctx, query, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("key %s: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to delete from database: %w", err)
	}

	return deleted, nil
}

// IncrementVisitCount атомарно увеличивает счётчик посещений
func (ds *DatabaseStore) IncrementVisitCount(ctx context.Context, code model.Code) (bool, error) {
	query := `
		UPDATE urls
		SET visit_count = visit_count + 1, updated_at = now()
		WHERE short_code = $1
	`

	tag, err := ds.pool.Exec(ctx, query, string(code))
	if err != nil {
		return false, fmt.Errorf("failed to increment visit count: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanRecord(row pgx.Row) (*model.URLRecord, error) {
	var (
		record      model.URLRecord
		code        string
		originalURL string
	)

	err := row.Scan(
		&record.ID,
		&code,
		&originalURL,
		&record.OwnerID,
		&record.VisitCount,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.ShortCode = model.Code(code)
	record.OriginalURL = model.URL(originalURL)
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()

	return &record, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationErrCode
}
