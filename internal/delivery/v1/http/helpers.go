package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/takara-tech/product-api/internal/usecase"
	"github.com/takara-tech/product-api/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type CreateProductRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

type ProductResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type DeleteProductResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type SearchProductsResponse struct {
	Products       []ProductResponse `json:"products"`
	TotalCount     int               `json:"total_count"`
	Skip           int               `json:"skip"`
	Limit          int               `json:"limit"`
	SearchCriteria map[string]any    `json:"search_criteria"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse переводит ошибку в статус и сообщение для клиента.
// Неизвестные ошибки схлопываются в 500 без раскрытия внутренностей.
func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNameEmpty),
		errors.Is(err, e.ErrProductNameTooLong),
		errors.Is(err, e.ErrPriceNegative),
		errors.Is(err, e.ErrPriceTooLarge),
		errors.Is(err, e.ErrProductIDNotPositive),
		errors.Is(err, e.ErrNoFieldsToUpdate),
		errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInvalidRequestBody):
		return http.StatusUnprocessableEntity, e.ErrInvalidRequestBody.Error()
	case errors.Is(err, e.ErrInvalidQueryParam):
		return http.StatusUnprocessableEntity, err.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseProductID извлекает идентификатор продукта из пути.
func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(raw, e.ErrInvalidProductID)
	}

	return id, nil
}

// parseYenParam разбирает денежный query-параметр.
// Принимаются только целые неотрицательные значения в иенах: дробная
// цена вроде "99.5" отклоняется ещё на границе.
func parseYenParam(raw string) (int64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrInvalidQueryParam)
	}

	if d.IsNegative() || !d.IsInteger() {
		return 0, e.Wrap(raw, e.ErrInvalidQueryParam)
	}

	if d.GreaterThan(decimal.NewFromInt(1<<62 - 1)) {
		return 0, e.Wrap(raw, e.ErrInvalidQueryParam)
	}

	return d.IntPart(), nil
}

// parseSearchQuery собирает запрос поиска из query-параметров.
func parseSearchQuery(r *http.Request) (*usecase.SearchProductsReq, error) {
	const (
		minLimit = 1
		maxLimit = 1000
	)

	query := r.URL.Query()

	var name *string
	if query.Has("name") {
		v := query.Get("name")
		name = &v
	}

	var minPrice *int64
	if query.Has("min_price") {
		v, err := parseYenParam(query.Get("min_price"))
		if err != nil {
			return nil, err
		}
		minPrice = &v
	}

	var maxPrice *int64
	if query.Has("max_price") {
		v, err := parseYenParam(query.Get("max_price"))
		if err != nil {
			return nil, err
		}
		maxPrice = &v
	}

	skip := usecase.DefaultSkip
	if query.Has("skip") {
		v, err := strconv.Atoi(query.Get("skip"))
		if err != nil || v < 0 {
			return nil, e.Wrap("skip", e.ErrInvalidQueryParam)
		}
		skip = v
	}

	limit := usecase.DefaultLimit
	if query.Has("limit") {
		v, err := strconv.Atoi(query.Get("limit"))
		if err != nil || v < minLimit || v > maxLimit {
			return nil, e.Wrap("limit", e.ErrInvalidQueryParam)
		}
		limit = v
	}

	return usecase.NewSearchProductsReq(name, minPrice, maxPrice, skip, limit), nil
}

// decodeJSONBody декодирует JSON-тело запроса.
func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidRequestBody)
	}

	return nil
}
