package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

func decodeEvent(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var msg structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &msg))

	return msg.AsMap()
}

func TestEncodeProductEvent(t *testing.T) {
	description := "Enamelled"
	event := usecase.NewProductEvent(usecase.ProductCreated, &domain.Product{
		ID:          5,
		Name:        "Dutch oven",
		Price:       decimal.RequireFromString("899.50"),
		Description: &description,
		Stock:       12,
	})
	event.OccurredAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	data, err := EncodeProductEvent(event)
	require.NoError(t, err)

	got := decodeEvent(t, data)
	assert.Equal(t, "product.created", got["event_type"])
	assert.Equal(t, float64(5), got["product_id"])
	assert.Equal(t, event.EventID, got["event_id"])
	assert.Equal(t, "2025-01-02T03:04:05Z", got["occurred_at"])

	product, ok := got["product"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "899.5", product["price"])
	assert.Equal(t, float64(12), product["stock"])
	assert.Equal(t, "Enamelled", product["description"])
}

func TestEncodeProductEvent_WithoutProduct(t *testing.T) {
	event := &usecase.ProductEvent{EventID: "id-1", Type: usecase.ProductDeleted, ProductID: 9}

	data, err := EncodeProductEvent(event)
	require.NoError(t, err)

	got := decodeEvent(t, data)
	assert.NotContains(t, got, "product")
	assert.Equal(t, "product.deleted", got["event_type"])
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishProductEvent(context.Background(), &usecase.ProductEvent{}))
}
