package e

import "fmt"

var (
	// Нарушения инвариантов value object'ов (400 Bad Request)
	ErrProductNameEmpty     = fmt.Errorf("product name cannot be empty")
	ErrProductNameTooLong   = fmt.Errorf("product name cannot exceed 1000 characters")
	ErrPriceNegative        = fmt.Errorf("price cannot be negative")
	ErrPriceTooLarge        = fmt.Errorf("price cannot exceed 999,999,999 yen")
	ErrProductIDNotPositive = fmt.Errorf("product id must be a positive integer")

	// Недопустимые операции над сущностью (400 Bad Request)
	ErrNoFieldsToUpdate = fmt.Errorf("at least one field must be provided for update")

	// Отсутствие сущности в хранилище (404 Not Found)
	ErrProductNotFound = fmt.Errorf("product not found")

	// Ошибки разбора запроса (400/422)
	ErrInvalidProductID    = fmt.Errorf("invalid product id")
	ErrInvalidRequestBody  = fmt.Errorf("invalid request body")
	ErrInvalidQueryParam   = fmt.Errorf("invalid query parameter")
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
