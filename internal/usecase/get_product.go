package usecase

import (
	"context"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// GetProductUC реализует сценарий получения продукта по идентификатору.
type GetProductUC struct {
	productRepo ProductRepository
}

func NewGetProductUC(productRepo ProductRepository) *GetProductUC {
	return &GetProductUC{productRepo: productRepo}
}

// Execute возвращает продукт или nil, если его нет.
// Отсутствие продукта ошибкой не считается: статус решает транспортный слой.
func (uc *GetProductUC) Execute(ctx context.Context, req *GetProductReq) (*GetProductRes, error) {
	const op = "GetProductUC.Execute"

	id, err := domain.NewProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if product == nil {
		return nil, nil
	}

	return newGetProductRes(product), nil
}
