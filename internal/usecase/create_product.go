package usecase

import (
	"context"
	"fmt"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// CreateProductUC реализует сценарий создания продукта.
type CreateProductUC struct {
	productRepo ProductRepository
}

func NewCreateProductUC(productRepo ProductRepository) *CreateProductUC {
	return &CreateProductUC{productRepo: productRepo}
}

// Execute создаёт value object'ы из сырых полей запроса, собирает сущность
// и сохраняет её. Ошибки валидации value object'ов пробрасываются вызывающему.
func (uc *CreateProductUC) Execute(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error) {
	const op = "CreateProductUC.Execute"

	name, err := domain.NewProductName(req.Name)
	if err != nil {
		return nil, err
	}

	price, err := domain.NewPrice(req.Price)
	if err != nil {
		return nil, err
	}

	product := domain.NewProduct(name, price)

	saved, err := uc.productRepo.Save(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Хранилище обязано присвоить идентификатор; пустой id после сохранения — нарушение инварианта.
	if saved.ID().IsEmpty() {
		return nil, e.Wrap(op, fmt.Errorf("product id is empty after save"))
	}

	return newCreateProductRes(saved), nil
}
