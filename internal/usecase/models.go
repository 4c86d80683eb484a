package usecase

import (
	"time"

	"github.com/takara-tech/product-api/internal/domain"
)

const (
	// DefaultSkip и DefaultLimit — пагинация по умолчанию.
	DefaultSkip  = 0
	DefaultLimit = 100
)

// CREATE

// CreateProductReq — запрос на создание продукта.
type CreateProductReq struct {
	Name  string
	Price int64
}

// CreateProductRes — ответ на создание продукта.
type CreateProductRes struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt string
	UpdatedAt string
}

// GET

// GetProductReq — запрос продукта по идентификатору.
type GetProductReq struct {
	ProductID int64
}

// GetProductRes — ответ с данными продукта.
type GetProductRes struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt string
	UpdatedAt string
}

// UPDATE

// UpdateProductReq — запрос на изменение продукта. nil-поля не изменяются.
type UpdateProductReq struct {
	ProductID int64
	Name      *string
	Price     *int64
}

// UpdateProductRes — ответ на изменение продукта.
type UpdateProductRes struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt string
	UpdatedAt string
}

// DELETE

// DeleteProductReq — запрос на удаление продукта.
type DeleteProductReq struct {
	ProductID int64
}

// DeleteProductRes — результат удаления продукта.
type DeleteProductRes struct {
	Success bool
	Message string
}

// SEARCH

// SearchProductsReq — запрос поиска продуктов. nil-фильтры не накладывают ограничений.
type SearchProductsReq struct {
	Name     *string
	MinPrice *int64
	MaxPrice *int64
	Skip     int
	Limit    int
}

// ProductSearchItem — продукт в результатах поиска.
type ProductSearchItem struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt string
	UpdatedAt string
}

// SearchProductsRes — ответ поиска.
// TotalCount — число элементов в возвращённой странице, не полное число совпадений.
type SearchProductsRes struct {
	Products       []ProductSearchItem
	TotalCount     int
	Skip           int
	Limit          int
	SearchCriteria map[string]any
}

// MAPPERS

func NewCreateProductReq(name string, price int64) *CreateProductReq {
	return &CreateProductReq{Name: name, Price: price}
}

func NewGetProductReq(productID int64) *GetProductReq {
	return &GetProductReq{ProductID: productID}
}

func NewUpdateProductReq(productID int64, name *string, price *int64) *UpdateProductReq {
	return &UpdateProductReq{ProductID: productID, Name: name, Price: price}
}

func NewDeleteProductReq(productID int64) *DeleteProductReq {
	return &DeleteProductReq{ProductID: productID}
}

func NewSearchProductsReq(name *string, minPrice, maxPrice *int64, skip, limit int) *SearchProductsReq {
	return &SearchProductsReq{
		Name:     name,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Skip:     skip,
		Limit:    limit,
	}
}

// formatTimestamp сериализует временную метку в ISO-8601 (UTC).
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func newCreateProductRes(product *domain.Product) *CreateProductRes {
	return &CreateProductRes{
		ID:        product.ID().Value(),
		Name:      product.Name().Value(),
		Price:     product.PriceInYen(),
		CreatedAt: formatTimestamp(product.CreatedAt()),
		UpdatedAt: formatTimestamp(product.UpdatedAt()),
	}
}

func newGetProductRes(product *domain.Product) *GetProductRes {
	return &GetProductRes{
		ID:        product.ID().Value(),
		Name:      product.Name().Value(),
		Price:     product.PriceInYen(),
		CreatedAt: formatTimestamp(product.CreatedAt()),
		UpdatedAt: formatTimestamp(product.UpdatedAt()),
	}
}

func newUpdateProductRes(product *domain.Product) *UpdateProductRes {
	return &UpdateProductRes{
		ID:        product.ID().Value(),
		Name:      product.Name().Value(),
		Price:     product.PriceInYen(),
		CreatedAt: formatTimestamp(product.CreatedAt()),
		UpdatedAt: formatTimestamp(product.UpdatedAt()),
	}
}

func newProductSearchItem(product *domain.Product) ProductSearchItem {
	return ProductSearchItem{
		ID:        product.ID().Value(),
		Name:      product.Name().Value(),
		Price:     product.PriceInYen(),
		CreatedAt: formatTimestamp(product.CreatedAt()),
		UpdatedAt: formatTimestamp(product.UpdatedAt()),
	}
}
