package converter

import (
	"github.com/takara-tech/product-api/internal/domain"
)

// ProductConverter преобразует сущность Product между domain и моделью PostgreSQL.
// Конвертер написан вручную: восстановление сущности проходит через конструкторы
// value object'ов и может вернуть ошибку валидации.
type ProductConverter struct{}

func NewProductConverter() ProductConverter {
	return ProductConverter{}
}

// ToModel переводит сущность в строку таблицы.
// Для несохранённого продукта поле ID остаётся нулевым.
func (ProductConverter) ToModel(entity *domain.Product) *ProductModel {
	return &ProductModel{
		ID:        entity.ID().Value(),
		Name:      entity.Name().Value(),
		Price:     entity.PriceInYen(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// ToEntity восстанавливает сущность из строки таблицы.
func (ProductConverter) ToEntity(model *ProductModel) (*domain.Product, error) {
	id, err := domain.NewProductID(model.ID)
	if err != nil {
		return nil, err
	}

	name, err := domain.NewProductName(model.Name)
	if err != nil {
		return nil, err
	}

	price, err := domain.NewPrice(model.Price)
	if err != nil {
		return nil, err
	}

	return domain.RestoreProduct(id, name, price, model.CreatedAt.UTC(), model.UpdatedAt.UTC()), nil
}
