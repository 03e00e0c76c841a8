package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/avc-dev/shortlink/internal/model"
)

const (
	opPut    = "put"
	opDelete = "delete"
	opVisit  = "visit"
)

// journalEntry одна строка журнала операций
type journalEntry struct {
	Op     string           `json:"op"`
	Record *model.URLRecord `json:"record,omitempty"`
	Code   model.Code       `json:"code,omitempty"`
	At     time.Time        `json:"at"`
}

// FileStorage управляет журналом операций в файле формата JSON Lines
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load читает все записи журнала в порядке их добавления
func (fs *FileStorage) Load() ([]journalEntry, error) {
	file, err := os.Open(fs.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []journalEntry{}, nil
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var entries []journalEntry

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		data := scanner.Bytes()
		if len(data) == 0 {
			continue
		}

		var entry journalEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journal line %d: %w", line, err)
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return entries, nil
}

// Append дописывает одну запись в конец журнала
func (fs *FileStorage) Append(entry journalEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	file, err := os.OpenFile(fs.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
