package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takara-tech/product-api/pkg/e"
)

func TestGetProductUC_Execute(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := newFakeProductRepo()
		saved := seedProduct(repo, "Laptop Computer", 150_000)
		uc := NewGetProductUC(repo)

		res, err := uc.Execute(context.Background(), NewGetProductReq(saved.ID().Value()))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, saved.ID().Value(), res.ID)
		assert.Equal(t, "Laptop Computer", res.Name)
		assert.Equal(t, int64(150_000), res.Price)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewGetProductUC(repo)

		res, err := uc.Execute(context.Background(), NewGetProductReq(42))

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("non positive id rejected", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewGetProductUC(repo)

		_, err := uc.Execute(context.Background(), NewGetProductReq(0))

		require.ErrorIs(t, err, e.ErrProductIDNotPositive)
	})

	t.Run("round trip after create", func(t *testing.T) {
		repo := newFakeProductRepo()
		created, err := NewCreateProductUC(repo).Execute(context.Background(), NewCreateProductReq("Laptop", 1000))
		require.NoError(t, err)

		res, err := NewGetProductUC(repo).Execute(context.Background(), NewGetProductReq(created.ID))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, created.Name, res.Name)
		assert.Equal(t, created.Price, res.Price)
	})
}
