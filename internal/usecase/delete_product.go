package usecase

import (
	"context"
	"fmt"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// DeleteProductUC реализует сценарий удаления продукта.
type DeleteProductUC struct {
	productRepo ProductRepository
}

func NewDeleteProductUC(productRepo ProductRepository) *DeleteProductUC {
	return &DeleteProductUC{productRepo: productRepo}
}

// Execute удаляет продукт. Возвращает nil, если продукта не было.
// Существование проверяется до удаления, но булев результат Delete
// перепроверяется ещё раз: между двумя вызовами строку мог удалить
// конкурентный запрос, и тогда сработает ветка "was not found".
func (uc *DeleteProductUC) Execute(ctx context.Context, req *DeleteProductReq) (*DeleteProductRes, error) {
	const op = "DeleteProductUC.Execute"

	id, err := domain.NewProductID(req.ProductID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if existing == nil {
		return nil, nil
	}

	deleted, err := uc.productRepo.Delete(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	message := fmt.Sprintf("Product with ID %d was deleted", req.ProductID)
	if !deleted {
		message = fmt.Sprintf("Product with ID %d was not found", req.ProductID)
	}

	return &DeleteProductRes{Success: deleted, Message: message}, nil
}
