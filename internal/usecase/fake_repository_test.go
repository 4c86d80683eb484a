package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/takara-tech/product-api/internal/domain"
	"github.com/takara-tech/product-api/pkg/e"
)

// fakeProductRepo — репозиторий в памяти для тестов сценариев.
type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64

	saveErr      error
	findErr      error
	deleteResult *bool // переопределяет результат Delete (имитация гонки)

	findAllCalls int
	searchCalls  int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[int64]*domain.Product),
		nextID:   1,
	}
}

func (f *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}

	id, err := domain.NewProductID(f.nextID)
	if err != nil {
		return nil, err
	}
	f.nextID++

	saved := domain.RestoreProduct(id, product.Name(), product.Price(), product.CreatedAt(), product.UpdatedAt())
	f.products[id.Value()] = saved

	return saved, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	product, ok := f.products[id.Value()]
	if !ok {
		return nil, nil
	}

	return product, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, skip, limit int) ([]*domain.Product, error) {
	f.findAllCalls++
	return f.page(f.sorted(), skip, limit), nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ID().Value()]; !ok {
		return nil, e.ErrProductNotFound
	}

	f.products[product.ID().Value()] = product

	return product, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id domain.ProductID) (bool, error) {
	if f.deleteResult != nil {
		return *f.deleteResult, nil
	}

	if _, ok := f.products[id.Value()]; !ok {
		return false, nil
	}

	delete(f.products, id.Value())

	return true, nil
}

func (f *fakeProductRepo) Search(_ context.Context, filter SearchFilter) ([]*domain.Product, error) {
	f.searchCalls++

	var matched []*domain.Product
	for _, product := range f.sorted() {
		if filter.Name != nil && !product.Name().Contains(strings.TrimSpace(*filter.Name)) {
			continue
		}
		if filter.MinPrice != nil && product.PriceInYen() < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && product.PriceInYen() > *filter.MaxPrice {
			continue
		}
		matched = append(matched, product)
	}

	return f.page(matched, filter.Skip, filter.Limit), nil
}

func (f *fakeProductRepo) sorted() []*domain.Product {
	all := make([]*domain.Product, 0, len(f.products))
	for _, product := range f.products {
		all = append(all, product)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID().Value() < all[j].ID().Value()
	})

	return all
}

func (f *fakeProductRepo) page(products []*domain.Product, skip, limit int) []*domain.Product {
	if skip >= len(products) {
		return nil
	}

	end := skip + limit
	if end > len(products) {
		end = len(products)
	}

	return products[skip:end]
}

var errStorage = errors.New("storage failure")

func seedProduct(f *fakeProductRepo, name string, price int64) *domain.Product {
	n, err := domain.NewProductName(name)
	if err != nil {
		panic(err)
	}
	p, err := domain.NewPrice(price)
	if err != nil {
		panic(err)
	}

	saved, err := f.Save(context.Background(), domain.NewProduct(n, p))
	if err != nil {
		panic(err)
	}

	return saved
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
