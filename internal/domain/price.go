package domain

import (
	"strconv"

	"github.com/takara-tech/product-api/pkg/e"
)

const (
	// MaxPrice — максимальная цена продукта в иенах.
	MaxPrice = 999_999_999
	// DefaultExpensiveThreshold — порог «дорогого» продукта по умолчанию, в иенах.
	DefaultExpensiveThreshold = 100_000
)

// Price — цена продукта в целых иенах (без минорных единиц).
type Price struct {
	value int64
}

// NewPrice создаёт цену. Порядок проверок: сначала отрицательное значение, затем превышение максимума.
func NewPrice(value int64) (Price, error) {
	if value < 0 {
		return Price{}, e.ErrPriceNegative
	}

	if value > MaxPrice {
		return Price{}, e.ErrPriceTooLarge
	}

	return Price{value: value}, nil
}

func (p Price) Value() int64 {
	return p.value
}

func (p Price) Equals(other Price) bool {
	return p.value == other.value
}

func (p Price) LessThan(other Price) bool {
	return p.value < other.value
}

func (p Price) LessOrEqual(other Price) bool {
	return p.value <= other.value
}

func (p Price) GreaterThan(other Price) bool {
	return p.value > other.value
}

func (p Price) GreaterOrEqual(other Price) bool {
	return p.value >= other.value
}

// IsInRange проверяет принадлежность цены диапазону [minPrice, maxPrice] (границы включительно).
func (p Price) IsInRange(minPrice, maxPrice int64) bool {
	return minPrice <= p.value && p.value <= maxPrice
}

// IsExpensive сообщает, превышает ли цена порог.
func (p Price) IsExpensive(threshold int64) bool {
	return p.value > threshold
}

// IsAffordable сообщает, укладывается ли цена в бюджет.
func (p Price) IsAffordable(budget int64) bool {
	return p.value <= budget
}

func (p Price) String() string {
	return strconv.FormatInt(p.value, 10) + " yen"
}
