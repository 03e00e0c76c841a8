package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

// FileStore декоратор над Store, который добавляет персистентность через журнал в файле.
// Мутация сначала дописывается в журнал и только после этого становится видна в памяти;
// при старте журнал проигрывается заново.
type FileStore struct {
	store       *Store
	fileStorage *FileStorage
	mutex       sync.Mutex
}

// NewFileStore создаёт FileStore и восстанавливает состояние из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

func (fs *FileStore) FindOne(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	return fs.store.FindOne(ctx, code)
}

// Insert журналирует запись и затем публикует её в памяти.
// fs.mutex сериализует мутации, поэтому проверка уникальности не устаревает до публикации.
func (fs *FileStore) Insert(ctx context.Context, record model.URLRecord) (*model.URLRecord, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := fs.store.FindOne(ctx, record.ShortCode); err == nil {
		return nil, fmt.Errorf("key %s: %w", record.ShortCode, ErrAlreadyExists)
	}

	prepared := prepareRecord(record, time.Now().UTC())

	entry := journalEntry{Op: opPut, Record: &prepared, At: prepared.CreatedAt}
	if err := fs.fileStorage.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append to file: %w", err)
	}

	fs.store.put(prepared)

	return &prepared, nil
}

func (fs *FileStore) FindOneAndDelete(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	existing, err := fs.store.FindOne(ctx, code)
	if err != nil {
		return nil, err
	}

	entry := journalEntry{Op: opDelete, Code: code, At: time.Now().UTC()}
	if err := fs.fileStorage.Append(entry); err != nil {
		return nil, fmt.Errorf("failed to append to file: %w", err)
	}

	fs.store.remove(code)

	return existing, nil
}

// IncrementVisitCount не меняет счётчик в памяти, если запись в журнал не удалась
func (fs *FileStore) IncrementVisitCount(ctx context.Context, code model.Code) (bool, error) {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()

	if _, err := fs.store.FindOne(ctx, code); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	at := time.Now().UTC()
	entry := journalEntry{Op: opVisit, Code: code, At: at}
	if err := fs.fileStorage.Append(entry); err != nil {
		return false, fmt.Errorf("failed to append to file: %w", err)
	}

	fs.store.mutex.Lock()
	defer fs.store.mutex.Unlock()

	return fs.store.increment(code, at), nil
}

// loadFromFile проигрывает журнал поверх пустого in-memory store
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	fs.store.mutex.Lock()
	defer fs.store.mutex.Unlock()

	for _, entry := range entries {
		switch entry.Op {
		case opPut:
			if entry.Record != nil {
				fs.store.store[entry.Record.ShortCode] = *entry.Record
			}
		case opDelete:
			delete(fs.store.store, entry.Code)
		case opVisit:
			fs.store.increment(entry.Code, entry.At)
		default:
			return fmt.Errorf("unknown journal operation %q", entry.Op)
		}
	}

	return nil
}
