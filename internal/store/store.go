package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrAlreadyExists = errors.New("key already exists")
)

// RecordMap представляет маппинг коротких кодов на записи
type RecordMap = map[model.Code]model.URLRecord

// Store in-memory хранилище записей, безопасное для конкурентного доступа
type Store struct {
	store RecordMap
	mutex sync.Mutex
}

func NewStore() *Store {
	return &Store{
		store: make(RecordMap),
		mutex: sync.Mutex{},
	}
}

func (s *Store) FindOne(_ context.Context, code model.Code) (*model.URLRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.store[code]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	return &record, nil
}

// Insert сохраняет новую запись. Уникальность кода проверяется под мьютексом,
// поэтому из двух конкурентных вставок одного кода успешна только первая.
func (s *Store) Insert(_ context.Context, record model.URLRecord) (*model.URLRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.store[record.ShortCode]; exists {
		return nil, fmt.Errorf("key %s: %w", record.ShortCode, ErrAlreadyExists)
	}

	prepared := prepareRecord(record, time.Now().UTC())
	s.store[prepared.ShortCode] = prepared

	return &prepared, nil
}

func (s *Store) FindOneAndDelete(_ context.Context, code model.Code) (*model.URLRecord, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, ok := s.store[code]
	if !ok {
		return nil, fmt.Errorf("key %s: %w", code, ErrNotFound)
	}

	delete(s.store, code)

	return &record, nil
}

// IncrementVisitCount увеличивает счётчик посещений; false означает, что запись не найдена
func (s *Store) IncrementVisitCount(_ context.Context, code model.Code) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.increment(code, time.Now().UTC()), nil
}

// Len возвращает количество записей
func (s *Store) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.store)
}

func (s *Store) put(record model.URLRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.store[record.ShortCode] = record
}

func (s *Store) remove(code model.Code) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.store, code)
}

// increment вызывается под мьютексом
func (s *Store) increment(code model.Code, at time.Time) bool {
	record, ok := s.store[code]
	if !ok {
		return false
	}

	record.VisitCount++
	record.UpdatedAt = at
	s.store[code] = record

	return true
}

// prepareRecord заполняет поля, которые назначает хранилище
func prepareRecord(record model.URLRecord, now time.Time) model.URLRecord {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = record.CreatedAt
	}
	if record.VisitCount < 0 {
		record.VisitCount = 0
	}

	return record
}
