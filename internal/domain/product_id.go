package domain

import (
	"strconv"

	"github.com/takara-tech/product-api/pkg/e"
)

// ProductID — идентификатор продукта.
// Пустое значение означает, что сущность ещё не сохранена в хранилище.
type ProductID struct {
	value int64
}

// NewProductID создаёт идентификатор. Значение должно быть строго положительным.
func NewProductID(value int64) (ProductID, error) {
	if value <= 0 {
		return ProductID{}, e.ErrProductIDNotPositive
	}

	return ProductID{value: value}, nil
}

// EmptyProductID возвращает идентификатор несохранённого продукта.
func EmptyProductID() ProductID {
	return ProductID{}
}

func (id ProductID) Value() int64 {
	return id.value
}

// IsEmpty сообщает, присвоен ли идентификатор хранилищем.
func (id ProductID) IsEmpty() bool {
	return id.value == 0
}

func (id ProductID) Equals(other ProductID) bool {
	return id.value == other.value
}

func (id ProductID) String() string {
	if id.IsEmpty() {
		return "none"
	}

	return strconv.FormatInt(id.value, 10)
}
