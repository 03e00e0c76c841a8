package service

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// UniqueCodeGenerator выдаёт коды, которых нет в хранилище на момент проверки.
// Окончательную уникальность гарантирует уникальный индекс хранилища.
type UniqueCodeGenerator struct {
	generator Generator
	checker   CodeChecker
}

func NewUniqueCodeGenerator(generator Generator, checker CodeChecker) *UniqueCodeGenerator {
	return &UniqueCodeGenerator{
		generator: generator,
		checker:   checker,
	}
}

// Generate делает не более maxAttempts попыток. Ошибка хранилища при проверке
// прерывает генерацию и не считается коллизией.
func (g *UniqueCodeGenerator) Generate(ctx context.Context, maxAttempts int) (model.Code, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := g.generator.GenerateCode()
		if err != nil {
			return "", err
		}

		exists, err := g.checker.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check candidate code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("%w: no free code after %d attempts", ErrExhausted, maxAttempts)
}
