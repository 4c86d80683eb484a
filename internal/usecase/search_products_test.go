package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProductsUC_Execute(t *testing.T) {
	t.Run("no filters delegates to find all", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop", 150_000)
		seedProduct(repo, "Mouse", 3000)
		uc := NewSearchProductsUC(repo)

		res, err := uc.Execute(context.Background(), NewSearchProductsReq(nil, nil, nil, DefaultSkip, DefaultLimit))

		require.NoError(t, err)
		assert.Equal(t, 1, repo.findAllCalls)
		assert.Equal(t, 0, repo.searchCalls)
		assert.Len(t, res.Products, 2)
		assert.Equal(t, 2, res.TotalCount)
		assert.Empty(t, res.SearchCriteria)
	})

	t.Run("all filters combined with AND", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop Computer", 150_000)
		seedProduct(repo, "Laptop Stand", 5000)
		seedProduct(repo, "Desktop Computer", 150_000)
		uc := NewSearchProductsUC(repo)

		res, err := uc.Execute(context.Background(), NewSearchProductsReq(
			strPtr("laptop"), int64Ptr(100_000), int64Ptr(200_000), DefaultSkip, DefaultLimit,
		))

		require.NoError(t, err)
		assert.Equal(t, 1, repo.searchCalls)
		require.Len(t, res.Products, 1)
		assert.Equal(t, "Laptop Computer", res.Products[0].Name)
		assert.Equal(t, 1, res.TotalCount)
		assert.Equal(t, map[string]any{
			"name":      "laptop",
			"min_price": int64(100_000),
			"max_price": int64(200_000),
		}, res.SearchCriteria)
	})

	t.Run("criteria echoes only supplied filters", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop", 150_000)
		uc := NewSearchProductsUC(repo)

		res, err := uc.Execute(context.Background(), NewSearchProductsReq(nil, int64Ptr(0), nil, DefaultSkip, DefaultLimit))

		require.NoError(t, err)
		// min_price=0 задан явно и должен попасть в критерии
		assert.Equal(t, map[string]any{"min_price": int64(0)}, res.SearchCriteria)
	})

	t.Run("empty name filter not echoed", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop", 150_000)
		uc := NewSearchProductsUC(repo)

		res, err := uc.Execute(context.Background(), NewSearchProductsReq(strPtr(""), nil, int64Ptr(200_000), DefaultSkip, DefaultLimit))

		require.NoError(t, err)
		assert.Equal(t, map[string]any{"max_price": int64(200_000)}, res.SearchCriteria)
	})

	t.Run("pagination applies after filtering", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop A", 1000)
		seedProduct(repo, "Laptop B", 2000)
		seedProduct(repo, "Laptop C", 3000)
		uc := NewSearchProductsUC(repo)

		res, err := uc.Execute(context.Background(), NewSearchProductsReq(strPtr("laptop"), nil, nil, 1, 1))

		require.NoError(t, err)
		require.Len(t, res.Products, 1)
		assert.Equal(t, "Laptop B", res.Products[0].Name)
		assert.Equal(t, 1, res.TotalCount) // размер страницы, не полное число совпадений
		assert.Equal(t, 1, res.Skip)
		assert.Equal(t, 1, res.Limit)
	})

	t.Run("no filters equals find all result", func(t *testing.T) {
		repo := newFakeProductRepo()
		seedProduct(repo, "Laptop", 1000)
		seedProduct(repo, "Mouse", 2000)

		all, err := repo.FindAll(context.Background(), DefaultSkip, DefaultLimit)
		require.NoError(t, err)

		res, err := NewSearchProductsUC(repo).Execute(context.Background(),
			NewSearchProductsReq(nil, nil, nil, DefaultSkip, DefaultLimit))
		require.NoError(t, err)

		require.Len(t, res.Products, len(all))
		for i, product := range all {
			assert.Equal(t, product.ID().Value(), res.Products[i].ID)
		}
	})
}
