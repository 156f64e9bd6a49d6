package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/redis/converter"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductKeys(t *testing.T) {
	assert.Equal(t, "product:42", productKey(42))
	assert.Equal(t, []string{"product:1", "product:2"}, productKeys([]int64{1, 2}))
	assert.Equal(t, "product:42:stale", staleKey(42))
	assert.NotEqual(t, productKey(42), staleKey(42))
}

func TestProductCachePayload(t *testing.T) {
	category := "Kitchen"
	product := &domain.ProductDetails{
		Product: domain.Product{
			ID:    7,
			Name:  "Cast iron pan",
			Price: decimal.RequireFromString("1299.90"),
			Stock: 4,
		},
		CategoryName: &category,
	}

	data, err := json.Marshal(converter.ToRedisModel(product))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"price":"1299.9"`)
	assert.NotContains(t, string(data), "manufacturer_name")

	model, err := unmarshalProduct(data)
	require.NoError(t, err)

	got := converter.ToEntity(model)
	assert.Equal(t, product.ID, got.ID)
	assert.True(t, product.Price.Equal(got.Price))
	assert.Equal(t, "Kitchen", *got.CategoryName)
	assert.Nil(t, got.ManufacturerName)
}

func TestUnmarshalProduct_Corrupted(t *testing.T) {
	_, err := unmarshalProduct([]byte("{not json"))
	assert.Error(t, err)
}

func TestNopCacheRepo(t *testing.T) {
	cache := NewNopCacheRepo()

	got, err := cache.GetProduct(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, cache.SetProduct(context.Background(), &domain.ProductDetails{}))
	assert.NoError(t, cache.DeleteProducts(context.Background(), []int64{1}))
}
