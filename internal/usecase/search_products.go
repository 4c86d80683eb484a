package usecase

import (
	"context"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// SearchProductsUC реализует сценарий поиска продуктов.
type SearchProductsUC struct {
	productRepo ProductRepository
}

func NewSearchProductsUC(productRepo ProductRepository) *SearchProductsUC {
	return &SearchProductsUC{productRepo: productRepo}
}

// Execute ищет продукты по фильтрам. Если не задан ни один фильтр,
// возвращается обычная страница всех продуктов.
// TotalCount в ответе — размер возвращённой страницы.
func (uc *SearchProductsUC) Execute(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error) {
	const op = "SearchProductsUC.Execute"

	var (
		products []*domain.Product
		err      error
	)

	if req.Name != nil || req.MinPrice != nil || req.MaxPrice != nil {
		products, err = uc.productRepo.Search(ctx, SearchFilter{
			Name:     req.Name,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
			Skip:     req.Skip,
			Limit:    req.Limit,
		})
	} else {
		products, err = uc.productRepo.FindAll(ctx, req.Skip, req.Limit)
	}
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items := make([]ProductSearchItem, 0, len(products))
	for _, product := range products {
		items = append(items, newProductSearchItem(product))
	}

	// В ответ попадают только реально заданные фильтры.
	criteria := make(map[string]any)
	if req.Name != nil && *req.Name != "" {
		criteria["name"] = *req.Name
	}
	if req.MinPrice != nil {
		criteria["min_price"] = *req.MinPrice
	}
	if req.MaxPrice != nil {
		criteria["max_price"] = *req.MaxPrice
	}

	return &SearchProductsRes{
		Products:       items,
		TotalCount:     len(items),
		Skip:           req.Skip,
		Limit:          req.Limit,
		SearchCriteria: criteria,
	}, nil
}
