package kafka

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
)

// NopPublisher используется, когда брокеры не настроены.
type NopPublisher struct{}

func (NopPublisher) PublishProductEvent(context.Context, *usecase.ProductEvent) error {
	return nil
}
