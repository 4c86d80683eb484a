package usecase

import "context"

// Интерфейсы сценариев, потребляемые транспортным слоем.

type CreateProduct interface {
	Execute(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error)
}

type GetProduct interface {
	Execute(ctx context.Context, req *GetProductReq) (*GetProductRes, error)
}

type UpdateProduct interface {
	Execute(ctx context.Context, req *UpdateProductReq) (*UpdateProductRes, error)
}

type DeleteProduct interface {
	Execute(ctx context.Context, req *DeleteProductReq) (*DeleteProductRes, error)
}

type SearchProducts interface {
	Execute(ctx context.Context, req *SearchProductsReq) (*SearchProductsRes, error)
}
