package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takara-tech/product-api/pkg/e"
)

func TestCreateProductUC_Execute(t *testing.T) {
	t.Run("creates and assigns id", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewCreateProductUC(repo)

		res, err := uc.Execute(context.Background(), NewCreateProductReq("Laptop Computer", 150_000))

		require.NoError(t, err)
		assert.Greater(t, res.ID, int64(0))
		assert.Equal(t, "Laptop Computer", res.Name)
		assert.Equal(t, int64(150_000), res.Price)
		assert.NotEmpty(t, res.CreatedAt)
		assert.Equal(t, res.CreatedAt, res.UpdatedAt)
	})

	t.Run("trims name before saving", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewCreateProductUC(repo)

		res, err := uc.Execute(context.Background(), NewCreateProductReq("  Laptop  ", 1000))

		require.NoError(t, err)
		assert.Equal(t, "Laptop", res.Name)
	})

	t.Run("negative price rejected before storage", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewCreateProductUC(repo)

		_, err := uc.Execute(context.Background(), NewCreateProductReq("Laptop", -100))

		require.ErrorIs(t, err, e.ErrPriceNegative)
		assert.Empty(t, repo.products)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewCreateProductUC(repo)

		_, err := uc.Execute(context.Background(), NewCreateProductReq("   ", 1000))

		require.ErrorIs(t, err, e.ErrProductNameEmpty)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := newFakeProductRepo()
		repo.saveErr = errStorage
		uc := NewCreateProductUC(repo)

		_, err := uc.Execute(context.Background(), NewCreateProductReq("Laptop", 1000))

		require.ErrorIs(t, err, errStorage)
	})
}
