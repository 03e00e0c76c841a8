package service

import (
	"fmt"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// AllowedChars алфавит коротких кодов: цифры, строчные и прописные латинские буквы
const AllowedChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeGenerator генерирует случайные коды на криптографически стойком источнике
type CodeGenerator struct {
	length int
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{length: config.CodeLength}
}

// GenerateCode генерирует случайный код
func (g *CodeGenerator) GenerateCode() (model.Code, error) {
	code, err := gonanoid.Generate(AllowedChars, g.length)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}

	return model.Code(code), nil
}
