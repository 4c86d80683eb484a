package domain

import (
	"fmt"
	"time"

	"github.com/takara-tech/product-api/pkg/e"
)

// Product описывает продукт каталога.
// Сущность владеет своими value object'ами и правилами изменения временных меток.
type Product struct {
	id        ProductID
	name      ProductName
	price     Price
	createdAt time.Time
	updatedAt time.Time
}

// NewProduct создаёт несохранённый продукт: идентификатор пустой,
// обе временные метки — текущее время UTC.
func NewProduct(name ProductName, price Price) *Product {
	now := time.Now().UTC()

	return &Product{
		id:        EmptyProductID(),
		name:      name,
		price:     price,
		createdAt: now,
		updatedAt: now,
	}
}

// RestoreProduct восстанавливает продукт из сохранённой строки хранилища.
func RestoreProduct(id ProductID, name ProductName, price Price, createdAt, updatedAt time.Time) *Product {
	return &Product{
		id:        id,
		name:      name,
		price:     price,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Product) ID() ProductID {
	return p.id
}

func (p *Product) Name() ProductName {
	return p.name
}

func (p *Product) Price() Price {
	return p.price
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

// Update применяет переданные поля и всегда обновляет updatedAt,
// даже если новое значение совпадает со старым.
// Возвращает ошибку, если не передано ни одного поля.
func (p *Product) Update(name *ProductName, price *Price) error {
	if name == nil && price == nil {
		return e.ErrNoFieldsToUpdate
	}

	if name != nil {
		p.name = *name
	}

	if price != nil {
		p.price = *price
	}

	p.updatedAt = time.Now().UTC()

	return nil
}

// IsExpensive сообщает, превышает ли цена продукта порог.
func (p *Product) IsExpensive(threshold int64) bool {
	return p.price.IsExpensive(threshold)
}

// IsAffordable сообщает, укладывается ли цена продукта в бюджет.
func (p *Product) IsAffordable(budget int64) bool {
	return p.price.IsAffordable(budget)
}

// PriceInYen возвращает цену продукта в иенах.
func (p *Product) PriceInYen() int64 {
	return p.price.Value()
}

func (p *Product) String() string {
	return fmt.Sprintf("Product(id=%s, name=%s, price=%s)", p.id, p.name, p.price)
}
