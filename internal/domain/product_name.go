package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/takara-tech/product-api/pkg/e"
)

// MaxProductNameLen — максимальная длина названия продукта в символах (после обрезки пробелов).
const MaxProductNameLen = 1000

// ProductName — название продукта.
// Значение нормализуется (обрезаются крайние пробелы) и валидируется при создании.
type ProductName struct {
	value string
}

// NewProductName создаёт название продукта.
// Сначала обрезаются крайние пробелы, затем проверяются пустота и длина.
func NewProductName(value string) (ProductName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductName{}, e.ErrProductNameEmpty
	}

	if utf8.RuneCountInString(trimmed) > MaxProductNameLen {
		return ProductName{}, e.ErrProductNameTooLong
	}

	return ProductName{value: trimmed}, nil
}

func (n ProductName) Value() string {
	return n.value
}

func (n ProductName) Equals(other ProductName) bool {
	return n.value == other.value
}

// Contains проверяет вхождение подстроки без учёта регистра.
func (n ProductName) Contains(text string) bool {
	return strings.Contains(strings.ToLower(n.value), strings.ToLower(text))
}

func (n ProductName) String() string {
	return n.value
}
