package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takara-tech/product-api/pkg/e"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestUpdateProductUC_Execute(t *testing.T) {
	t.Run("price only keeps name", func(t *testing.T) {
		repo := newFakeProductRepo()
		saved := seedProduct(repo, "Laptop Computer", 150_000)
		uc := NewUpdateProductUC(repo)

		res, err := uc.Execute(context.Background(), NewUpdateProductReq(saved.ID().Value(), nil, int64Ptr(180_000)))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, int64(180_000), res.Price)
		assert.Equal(t, "Laptop Computer", res.Name)

		createdAt, err := parseTimestamp(res.CreatedAt)
		require.NoError(t, err)
		updatedAt, err := parseTimestamp(res.UpdatedAt)
		require.NoError(t, err)
		assert.False(t, updatedAt.Before(createdAt))
	})

	t.Run("name only keeps price", func(t *testing.T) {
		repo := newFakeProductRepo()
		saved := seedProduct(repo, "Laptop", 1000)
		uc := NewUpdateProductUC(repo)

		res, err := uc.Execute(context.Background(), NewUpdateProductReq(saved.ID().Value(), strPtr("Gaming Laptop"), nil))

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "Gaming Laptop", res.Name)
		assert.Equal(t, int64(1000), res.Price)
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		repo := newFakeProductRepo()
		uc := NewUpdateProductUC(repo)

		res, err := uc.Execute(context.Background(), NewUpdateProductReq(42, strPtr("Laptop"), nil))

		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("no fields provided", func(t *testing.T) {
		repo := newFakeProductRepo()
		saved := seedProduct(repo, "Laptop", 1000)
		uc := NewUpdateProductUC(repo)

		_, err := uc.Execute(context.Background(), NewUpdateProductReq(saved.ID().Value(), nil, nil))

		require.ErrorIs(t, err, e.ErrNoFieldsToUpdate)
	})

	t.Run("invalid new price rejected", func(t *testing.T) {
		repo := newFakeProductRepo()
		saved := seedProduct(repo, "Laptop", 1000)
		uc := NewUpdateProductUC(repo)

		_, err := uc.Execute(context.Background(), NewUpdateProductReq(saved.ID().Value(), nil, int64Ptr(1_000_000_000)))

		require.ErrorIs(t, err, e.ErrPriceTooLarge)
	})
}
