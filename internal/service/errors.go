package service

import "errors"

var (
	// ErrInvalidInput исходный URL или владелец не прошли проверку
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound короткий код не найден в хранилище
	ErrNotFound = errors.New("short code not found")
	// ErrExhausted не удалось получить свободный код за отведённое число попыток
	ErrExhausted = errors.New("code generation exhausted")
)
