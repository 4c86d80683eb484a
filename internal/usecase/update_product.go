package usecase

import (
	"context"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// UpdateProductUC реализует сценарий изменения продукта.
type UpdateProductUC struct {
	productRepo ProductRepository
}

func NewUpdateProductUC(productRepo ProductRepository) *UpdateProductUC {
	return &UpdateProductUC{productRepo: productRepo}
}

// Execute изменяет существующий продукт. Возвращает nil, если продукта нет.
// Value object'ы строятся только для полей, присутствующих в запросе.
func (uc *UpdateProductUC) Execute(ctx context.Context, req *UpdateProductReq) (*UpdateProductRes, error) {
	const op = "UpdateProductUC.Execute"

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

	var name *domain.ProductName
	if req.Name != nil {
		n, err := domain.NewProductName(*req.Name)
		if err != nil {
			return nil, err
		}
		name = &n
	}

	var price *domain.Price
	if req.Price != nil {
		p, err := domain.NewPrice(*req.Price)
		if err != nil {
			return nil, err
		}
		price = &p
	}

	if err := product.Update(name, price); err != nil {
		return nil, err
	}

	updated, err := uc.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return newUpdateProductRes(updated), nil
}
