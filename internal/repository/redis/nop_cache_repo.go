package redis

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

// NopCacheRepo используется, когда Redis отключён: всегда промах.
type NopCacheRepo struct{}

func NewNopCacheRepo() *NopCacheRepo {
	return &NopCacheRepo{}
}

func (NopCacheRepo) GetProduct(context.Context, int64) (*domain.ProductDetails, error) {
	return nil, nil
}

func (NopCacheRepo) SetProduct(context.Context, *domain.ProductDetails) error {
	return nil
}

func (NopCacheRepo) DeleteProducts(context.Context, []int64) error {
	return nil
}
