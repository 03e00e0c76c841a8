// Package cache содержит горячий кэш записей и рейтинг популярности коротких кодов.
// Redis-реализации используются в рабочем окружении, in-memory - локально и в тестах.
package cache

import "github.com/avc-dev/shortlink/internal/model"

const (
	// KeyPrefix префикс ключей кэша записей
	KeyPrefix = "url:cache:"
	// RankingKey ключ отсортированного множества популярности
	RankingKey = "url:ranking"
)

// Key возвращает ключ кэша для короткого кода
func Key(code model.Code) string {
	return KeyPrefix + string(code)
}
