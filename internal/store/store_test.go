package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(code model.Code, url model.URL) model.URLRecord {
	return model.URLRecord{ShortCode: code, OriginalURL: url, OwnerID: "test-user"}
}

// TestNewStore проверяет создание нового хранилища
func TestNewStore(t *testing.T) {
	// Act
	store := NewStore()

	// Assert
	require.NotNil(t, store)
	assert.NotNil(t, store.store)
	assert.Equal(t, 0, store.Len(), "Expected empty store")
}

// TestStore_Insert_Success проверяет, что хранилище заполняет служебные поля
func TestStore_Insert_Success(t *testing.T) {
	tests := []struct {
		name string
		code model.Code
		url  model.URL
	}{
		{name: "Simple insert", code: "abc1234", url: "https://example.com"},
		{name: "Insert with long URL", code: "xyz9876", url: "https://example.com/very/long/path/with/many/segments"},
		{name: "Insert with query params", code: "qwerty1", url: "https://example.com?param=value&other=test"},
		{name: "Insert with unicode", code: "unicod1", url: "https://example.com/путь"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			store := NewStore()

			// Act
			created, err := store.Insert(context.Background(), newRecord(tt.code, tt.url))

			// Assert
			require.NoError(t, err)
			assert.NotEmpty(t, created.ID)
			assert.Equal(t, tt.code, created.ShortCode)
			assert.Equal(t, tt.url, created.OriginalURL)
			assert.Equal(t, int64(0), created.VisitCount)
			assert.False(t, created.CreatedAt.IsZero())
			assert.Equal(t, created.CreatedAt, created.UpdatedAt)

			stored, exists := store.store[tt.code]
			assert.True(t, exists, "Expected key to exist in store")
			assert.Equal(t, *created, stored)
		})
	}
}

// TestStore_Insert_Duplicate проверяет ошибку при дубликате кода
func TestStore_Insert_Duplicate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	code := model.Code("abc1234")

	_, err := store.Insert(ctx, newRecord(code, "https://example.com/first"))
	require.NoError(t, err)

	// Act
	_, err = store.Insert(ctx, newRecord(code, "https://example.com/second"))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Старое значение не изменилось
	assert.Equal(t, model.URL("https://example.com/first"), store.store[code].OriginalURL)
}

// TestStore_Insert_NegativeVisitCount проверяет, что счётчик не бывает отрицательным
func TestStore_Insert_NegativeVisitCount(t *testing.T) {
	record := newRecord("abc1234", "https://example.com")
	record.VisitCount = -5

	created, err := NewStore().Insert(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, int64(0), created.VisitCount)
}

// TestStore_FindOne проверяет чтение по коду
func TestStore_FindOne(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	_, err := store.Insert(ctx, newRecord("abc1234", "https://example.com"))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		record, err := store.FindOne(ctx, "abc1234")
		require.NoError(t, err)
		assert.Equal(t, model.URL("https://example.com"), record.OriginalURL)
	})

	t.Run("not found", func(t *testing.T) {
		record, err := store.FindOne(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, record)
	})
}

// TestStore_FindOne_ReturnsCopy проверяет, что изменение результата не влияет на хранилище
func TestStore_FindOne_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	_, err := store.Insert(ctx, newRecord("abc1234", "https://example.com"))
	require.NoError(t, err)

	record, err := store.FindOne(ctx, "abc1234")
	require.NoError(t, err)
	record.OriginalURL = "https://changed.com"

	again, err := store.FindOne(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com"), again.OriginalURL)
}

// TestStore_FindOneAndDelete проверяет удаление и повторное использование кода
func TestStore_FindOneAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	_, err := store.Insert(ctx, newRecord("abc1234", "https://example.com"))
	require.NoError(t, err)

	deleted, err := store.FindOneAndDelete(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, model.Code("abc1234"), deleted.ShortCode)

	_, err = store.FindOne(ctx, "abc1234")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.FindOneAndDelete(ctx, "abc1234")
	assert.ErrorIs(t, err, ErrNotFound)

	// Удалённый код можно выдать заново
	_, err = store.Insert(ctx, newRecord("abc1234", "https://example.org"))
	assert.NoError(t, err)
}

// TestStore_IncrementVisitCount проверяет счётчик посещений
func TestStore_IncrementVisitCount(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	created, err := store.Insert(ctx, newRecord("abc1234", "https://example.com"))
	require.NoError(t, err)

	for range 3 {
		matched, err := store.IncrementVisitCount(ctx, "abc1234")
		require.NoError(t, err)
		assert.True(t, matched)
	}

	record, err := store.FindOne(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(3), record.VisitCount)
	assert.False(t, record.UpdatedAt.Before(created.UpdatedAt))

	matched, err := store.IncrementVisitCount(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, matched)
}

// TestStore_ConcurrentInsertSameCode проверяет, что из конкурентных вставок одного кода успешна одна
func TestStore_ConcurrentInsertSameCode(t *testing.T) {
	// Arrange
	ctx := context.Background()
	store := NewStore()
	numGoroutines := 50

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	// Act
	for i := range numGoroutines {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.Insert(ctx, newRecord("same123", model.URL(fmt.Sprintf("https://example.com/%d", i))))
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	// Assert
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.Len())
}

// TestStore_ConcurrentIncrement проверяет атомарность инкремента
func TestStore_ConcurrentIncrement(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	_, err := store.Insert(ctx, newRecord("abc1234", "https://example.com"))
	require.NoError(t, err)

	numGoroutines := 100
	var wg sync.WaitGroup
	for range numGoroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.IncrementVisitCount(ctx, "abc1234")
		}()
	}
	wg.Wait()

	record, err := store.FindOne(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, int64(numGoroutines), record.VisitCount)
}
