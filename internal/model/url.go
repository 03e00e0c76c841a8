package model

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"
)

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// ErrInvalidOriginalURL возвращается, когда URL не проходит проверку формы
var ErrInvalidOriginalURL = errors.New("original URL has invalid shape")

// URLRecord представляет хранимую запись короткой ссылки.
// Один и тот же JSON используется и в кэше, и при чтении из хранилища.
type URLRecord struct {
	ID          string    `json:"id"`
	OriginalURL URL       `json:"original_url"`
	ShortCode   Code      `json:"short_code"`
	OwnerID     string    `json:"owner_id"`
	VisitCount  int64     `json:"visit_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VisitEvent публикуется в брокер при каждом успешном редиректе
type VisitEvent struct {
	ShortCode Code      `json:"short_code"`
	VisitedAt time.Time `json:"visited_at"`
}

var originalURLPattern = regexp.MustCompile(`(?i)^(https?|ftp)://[^\s/$.?#].[^\s]*$`)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
}

// ValidateOriginalURL проверяет только синтаксис URL, без сетевых запросов
func ValidateOriginalURL(raw string) error {
	if !originalURLPattern.MatchString(raw) {
		return ErrInvalidOriginalURL
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidOriginalURL
	}

	if !allowedSchemes[strings.ToLower(parsed.Scheme)] || parsed.Host == "" {
		return ErrInvalidOriginalURL
	}

	return nil
}

// ShortenResult результат создания короткой ссылки
type ShortenResult struct {
	Code     Code
	ShortURL string
}
