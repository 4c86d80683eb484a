package usecase

import (
	"context"

	"github.com/takara-tech/product-api/internal/domain"
)

// SearchFilter описывает критерии поиска продуктов.
// nil-поля не накладывают ограничений; заданные фильтры объединяются по AND.
type SearchFilter struct {
	Name     *string // подстрока названия, без учёта регистра
	MinPrice *int64  // нижняя граница цены, включительно
	MaxPrice *int64  // верхняя граница цены, включительно
	Skip     int
	Limit    int
}

// ProductRepository — контракт хранилища продуктов.
type ProductRepository interface {
	// Save сохраняет новый продукт и возвращает сущность с присвоенным хранилищем идентификатором.
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// FindByID возвращает продукт по идентификатору или nil, если его нет.
	FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	// FindAll возвращает страницу продуктов в стабильном порядке хранилища.
	FindAll(ctx context.Context, skip, limit int) ([]*domain.Product, error)
	// Update перезаписывает существующий продукт.
	// Возвращает e.ErrProductNotFound, если строки с таким идентификатором нет.
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Delete удаляет продукт. Возвращает true, если строка была удалена,
	// и false, если её не существовало. Отсутствие строки ошибкой не считается.
	Delete(ctx context.Context, id domain.ProductID) (bool, error)
	// Search возвращает страницу продуктов, удовлетворяющих фильтру.
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Product, error)
}
