package pgdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// oneLine схлопывает пробелы, чтобы сравнивать SQL без учёта форматирования.
func oneLine(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestCategoryStatsQuery_KeepsEmptyCategories(t *testing.T) {
	q := oneLine(categoryStatsQuery)

	assert.Contains(t, q, "FROM categories c LEFT JOIN products_categories pc ON pc.category_id = c.category_id")
	assert.Contains(t, q, "LEFT JOIN products p ON p.product_id = pc.product_id")
	assert.Contains(t, q, "COUNT(p.product_id)")
	assert.Contains(t, q, "ROUND(COALESCE(AVG(p.price), 0), 2)")
	assert.Contains(t, q, "GROUP BY c.category_id, c.category_name ORDER BY c.category_id")
	assert.NotContains(t, q, "FROM products")
	assert.NotContains(t, q, " JOIN categories")
}

func TestRatingStatsQuery_KeepsProductsWithoutReviews(t *testing.T) {
	q := oneLine(ratingStatsQuery)

	assert.Contains(t, q, "FROM products p LEFT JOIN reviews r ON r.product_id = p.product_id")
	assert.Contains(t, q, "COUNT(r.review_id)")
	assert.Contains(t, q, "ROUND(COALESCE(AVG(r.rating), 0), 2)")
	assert.Contains(t, q, "ORDER BY p.product_id")
	assert.NotContains(t, q, "LIMIT")
}

func TestEnsureCategoryQuery_KeepsExistingRow(t *testing.T) {
	q := oneLine(ensureCategoryQuery)

	assert.Contains(t, q, "INSERT INTO categories (category_id, category_name) VALUES ($1, $2)")
	assert.True(t, strings.HasSuffix(q, "ON CONFLICT (category_id) DO NOTHING;"))
	assert.NotContains(t, q, "DO UPDATE")
}

func TestDeleteProductQuery_ReturnsDeletedRow(t *testing.T) {
	q := oneLine(deleteProductQuery)

	assert.Equal(t,
		"DELETE FROM products WHERE product_id = $1 RETURNING product_id, name, price, description, stock;", q)
	assert.NotContains(t, q, "products_categories")
	assert.NotContains(t, q, "products_manufacturers")
}
