package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/takara-tech/product-api/pkg/e"
)

func mustName(t *testing.T, v string) ProductName {
	t.Helper()
	n, err := NewProductName(v)
	require.NoError(t, err)
	return n
}

func mustPrice(t *testing.T, v int64) Price {
	t.Helper()
	p, err := NewPrice(v)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	before := time.Now().UTC()
	product := NewProduct(mustName(t, "Laptop Computer"), mustPrice(t, 150_000))
	after := time.Now().UTC()

	assert.True(t, product.ID().IsEmpty())
	assert.Equal(t, "Laptop Computer", product.Name().Value())
	assert.Equal(t, int64(150_000), product.PriceInYen())

	assert.False(t, product.CreatedAt().Before(before))
	assert.False(t, product.CreatedAt().After(after))
	assert.Equal(t, product.CreatedAt(), product.UpdatedAt())
}

func TestProduct_Update(t *testing.T) {
	t.Run("no fields", func(t *testing.T) {
		product := NewProduct(mustName(t, "Laptop"), mustPrice(t, 1000))

		err := product.Update(nil, nil)

		require.ErrorIs(t, err, e.ErrNoFieldsToUpdate)
	})

	t.Run("name only", func(t *testing.T) {
		product := NewProduct(mustName(t, "Laptop"), mustPrice(t, 1000))
		prev := product.UpdatedAt()

		newName := mustName(t, "Gaming Laptop")
		err := product.Update(&newName, nil)

		require.NoError(t, err)
		assert.Equal(t, "Gaming Laptop", product.Name().Value())
		assert.Equal(t, int64(1000), product.PriceInYen())
		assert.False(t, product.UpdatedAt().Before(prev))
	})

	t.Run("price only", func(t *testing.T) {
		product := NewProduct(mustName(t, "Laptop"), mustPrice(t, 1000))
		created := product.CreatedAt()

		newPrice := mustPrice(t, 2000)
		err := product.Update(nil, &newPrice)

		require.NoError(t, err)
		assert.Equal(t, int64(2000), product.PriceInYen())
		assert.Equal(t, created, product.CreatedAt())
	})

	t.Run("same value still bumps updated_at", func(t *testing.T) {
		product := NewProduct(mustName(t, "Laptop"), mustPrice(t, 1000))
		prev := product.UpdatedAt()

		time.Sleep(time.Millisecond)
		samePrice := mustPrice(t, 1000)
		err := product.Update(nil, &samePrice)

		require.NoError(t, err)
		assert.True(t, product.UpdatedAt().After(prev))
	})
}

func TestProduct_Predicates(t *testing.T) {
	product := NewProduct(mustName(t, "Laptop"), mustPrice(t, 150_000))

	assert.True(t, product.IsExpensive(DefaultExpensiveThreshold))
	assert.False(t, product.IsExpensive(200_000))
	assert.True(t, product.IsAffordable(150_000))
	assert.False(t, product.IsAffordable(100_000))
	assert.Equal(t, int64(150_000), product.PriceInYen())
}
