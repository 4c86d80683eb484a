package http

import (
	"net/http"

	"github.com/takara-tech/product-api/internal/usecase"
	"github.com/takara-tech/product-api/pkg/e"
	"github.com/takara-tech/product-api/pkg/logger"
)

type ProductHandler struct {
	createUC usecase.CreateProduct
	getUC    usecase.GetProduct
	updateUC usecase.UpdateProduct
	deleteUC usecase.DeleteProduct
	searchUC usecase.SearchProducts
	logger   logger.Logger
}

func NewProductHandler(
	createUC usecase.CreateProduct,
	getUC usecase.GetProduct,
	updateUC usecase.UpdateProduct,
	deleteUC usecase.DeleteProduct,
	searchUC usecase.SearchProducts,
	logger logger.Logger,
) *ProductHandler {
	return &ProductHandler{
		createUC: createUC,
		getUC:    getUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		searchUC: searchUC,
		logger:   logger,
	}
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Создаёт новый продукт в каталоге
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Название и цена"
//	@Success		201		{object}	ProductResponse			"Созданный продукт"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		422		{object}	ErrorResponse			"Некорректное тело запроса"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		p.logger.Warnf("%d createProduct: %s", http.StatusUnprocessableEntity, err.Error())
		WriteError(w, err)
		return
	}

	if req.Name == nil || req.Price == nil {
		p.logger.Warnf("%d createProduct: missing required fields", http.StatusUnprocessableEntity)
		WriteError(w, e.ErrInvalidRequestBody)
		return
	}

	res, err := p.createUC.Execute(r.Context(), usecase.NewCreateProductReq(*req.Name, *req.Price))
	if err != nil {
		p.logger.Warnf("createProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(res.ID, res.Name, res.Price, res.CreatedAt, res.UpdatedAt))
}

// getProduct
//
//	@Summary		Получение продукта
//	@Description	Возвращает продукт по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int				true	"Идентификатор продукта"
//	@Success		200	{object}	ProductResponse	"Продукт"
//	@Failure		404	{object}	ErrorResponse	"Продукт не найден"
//	@Router			/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		p.logger.Warnf("%d getProduct: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.getUC.Execute(r.Context(), usecase.NewGetProductReq(id))
	if err != nil {
		p.logger.Warnf("getProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	if res == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(res.ID, res.Name, res.Price, res.CreatedAt, res.UpdatedAt))
}

// updateProduct
//
//	@Summary		Изменение продукта
//	@Description	Изменяет название и/или цену продукта
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Идентификатор продукта"
//	@Param			request	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	ProductResponse			"Изменённый продукт"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Продукт не найден"
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		p.logger.Warnf("%d updateProduct: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		p.logger.Warnf("%d updateProduct: %s", http.StatusUnprocessableEntity, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.updateUC.Execute(r.Context(), usecase.NewUpdateProductReq(id, req.Name, req.Price))
	if err != nil {
		p.logger.Warnf("updateProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	if res == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(res.ID, res.Name, res.Price, res.CreatedAt, res.UpdatedAt))
}

// deleteProduct
//
//	@Summary		Удаление продукта
//	@Description	Удаляет продукт по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int						true	"Идентификатор продукта"
//	@Success		200	{object}	DeleteProductResponse	"Результат удаления"
//	@Failure		404	{object}	ErrorResponse			"Продукт не найден"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		p.logger.Warnf("%d deleteProduct: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.deleteUC.Execute(r.Context(), usecase.NewDeleteProductReq(id))
	if err != nil {
		p.logger.Warnf("deleteProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	if res == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, &DeleteProductResponse{Success: res.Success, Message: res.Message})
}

// searchProducts
//
//	@Summary		Поиск продуктов
//	@Description	Ищет продукты по подстроке названия и диапазону цены; без фильтров возвращает все продукты постранично
//	@Tags			products
//	@Produce		json
//	@Param			name		query		string					false	"Подстрока названия (без учёта регистра)"
//	@Param			min_price	query		int						false	"Минимальная цена, включительно"
//	@Param			max_price	query		int						false	"Максимальная цена, включительно"
//	@Param			skip		query		int						false	"Сколько записей пропустить"	default(0)
//	@Param			limit		query		int						false	"Максимум записей в ответе"		default(100)
//	@Success		200			{object}	SearchProductsResponse	"Результаты поиска"
//	@Failure		422			{object}	ErrorResponse			"Некорректные query-параметры"
//	@Router			/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchQuery(r)
	if err != nil {
		p.logger.Warnf("%d searchProducts: %s", http.StatusUnprocessableEntity, err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.searchUC.Execute(r.Context(), req)
	if err != nil {
		p.logger.Warnf("searchProducts: %s", err.Error())
		WriteError(w, err)
		return
	}

	products := make([]ProductResponse, 0, len(res.Products))
	for _, item := range res.Products {
		products = append(products, newProductResponse(item.ID, item.Name, item.Price, item.CreatedAt, item.UpdatedAt))
	}

	WriteSuccess(w, http.StatusOK, &SearchProductsResponse{
		Products:       products,
		TotalCount:     res.TotalCount,
		Skip:           res.Skip,
		Limit:          res.Limit,
		SearchCriteria: res.SearchCriteria,
	})
}

func newProductResponse(id int64, name string, price int64, createdAt, updatedAt string) ProductResponse {
	return ProductResponse{
		ID:        id,
		Name:      name,
		Price:     price,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
