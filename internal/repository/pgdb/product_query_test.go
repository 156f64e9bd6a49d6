package pgdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildProductListing_All(t *testing.T) {
	q := BuildProductListing(usecase.NewProductFilter(usecase.FilterAll), domain.PageRequest{Page: 3, Limit: 10})

	assert.NotContains(t, q.SQL, "WHERE p.")
	assert.Contains(t, q.SQL, "LIMIT $1 OFFSET $2")
	assert.Contains(t, q.SQL, "LEFT JOIN products_categories pc ON pc.product_id = p.product_id\n")
	assert.Contains(t, q.SQL, "ORDER BY p.product_id ASC")
	assert.Equal(t, []any{10, 20}, q.Args)
}

func TestBuildProductListing_Search(t *testing.T) {
	q := BuildProductListing(usecase.NewSearchFilter("50%_off\\"), domain.PageRequest{Page: 1, Limit: 5})

	assert.Contains(t, q.SQL, `WHERE LOWER(p.name) LIKE LOWER($1) ESCAPE '\'`)
	assert.Contains(t, q.SQL, "LIMIT $2 OFFSET $3")
	require.Len(t, q.Args, 3)
	assert.Equal(t, `%50\%\_off\\%`, q.Args[0])
	assert.Equal(t, 5, q.Args[1])
	assert.Equal(t, 0, q.Args[2])
}

func TestBuildProductListing_Category(t *testing.T) {
	q := BuildProductListing(usecase.NewCategoryFilter(7), domain.PageRequest{Page: 2, Limit: 10})

	assert.Contains(t, q.SQL, "fc.category_id = $1")
	assert.Contains(t, q.SQL, "pc.product_id = p.product_id AND pc.category_id = $1")
	assert.Equal(t, []any{int64(7), 10, 10}, q.Args)
}

func TestBuildProductListing_ByIDIgnoresPage(t *testing.T) {
	q := BuildProductListing(usecase.NewByIDFilter(42), domain.PageRequest{Page: 9, Limit: 50})

	assert.Contains(t, q.SQL, "WHERE p.product_id = $1")
	assert.Equal(t, []any{int64(42), 1, 0}, q.Args)
}

func TestBuildProductCount(t *testing.T) {
	tests := []struct {
		name     string
		filter   usecase.ProductFilter
		wantSQL  string
		wantArgs []any
	}{
		{"all", usecase.NewProductFilter(usecase.FilterAll), "SELECT COUNT(*) FROM products p", nil},
		{
			"search", usecase.NewSearchFilter("pan"),
			`SELECT COUNT(*) FROM products p WHERE LOWER(p.name) LIKE LOWER($1) ESCAPE '\'`,
			[]any{"%pan%"},
		},
		{
			"category", usecase.NewCategoryFilter(3),
			"SELECT COUNT(*) FROM products p WHERE EXISTS (SELECT 1 FROM products_categories fc WHERE fc.product_id = p.product_id AND fc.category_id = $1)",
			[]any{int64(3)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := BuildProductCount(tt.filter)
			assert.Equal(t, tt.wantSQL, q.SQL)
			assert.Equal(t, tt.wantArgs, q.Args)
		})
	}
}

func TestCollapseProductRows(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	rows := []converter.ProductRowModel{
		{ProductID: 2, Name: "Pot", Price: price, Stock: 1},
		{ProductID: 2, Name: "Pot", Price: price, Stock: 1, CategoryName: strPtr("Kitchen")},
		{ProductID: 2, Name: "Pot", Price: price, Stock: 1, CategoryName: strPtr("Garden"), ManufacturerName: strPtr("Fiskars")},
		{ProductID: 1, Name: "Pan", Price: price, Stock: 3, ManufacturerName: strPtr("Tefal")},
	}

	got := CollapseProductRows(rows)
	require.Len(t, got, 2)

	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "Kitchen", *got[0].CategoryName)
	assert.Equal(t, "Fiskars", *got[0].ManufacturerName)

	assert.Equal(t, int64(1), got[1].ID)
	assert.Nil(t, got[1].CategoryName)
	assert.Equal(t, "Tefal", *got[1].ManufacturerName)
	assert.True(t, price.Equal(got[1].Price))
}

func TestCollapseProductRows_Empty(t *testing.T) {
	assert.Empty(t, CollapseProductRows(nil))
}

func TestMapForeignKey(t *testing.T) {
	fk := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgForeignKeyViolation})
	assert.ErrorIs(t, mapForeignKey(fk, e.ErrInvalidCategoryID), e.ErrInvalidCategoryID)

	unique := &pgconn.PgError{Code: "23505"}
	assert.Same(t, unique, mapForeignKey(unique, e.ErrInvalidCategoryID))

	plain := errors.New("conn reset")
	assert.Equal(t, plain, mapForeignKey(plain, e.ErrInvalidManufacturerID))
}
