package postgres

import (
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSchema(t *testing.T) string {
	t.Helper()

	data, err := migrationsFS.ReadFile("migrations/000001_catalog_schema.up.sql")
	require.NoError(t, err)

	return strings.Join(strings.Fields(string(data)), " ")
}

func TestMigrationsSource(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

// Колонки products вмещают любые значения, которые принимает валидатор продукта.
func TestSchema_ProductColumnsHoldValidatedValues(t *testing.T) {
	schema := readSchema(t)

	assert.Contains(t, schema, "price NUMERIC NOT NULL CHECK (price > 0)")
	assert.Contains(t, schema, "stock BIGINT NOT NULL CHECK (stock >= 0)")
	assert.NotContains(t, schema, "NUMERIC(12, 2)")
	assert.NotContains(t, schema, "stock INTEGER")
}

func TestSchema_ProductLinksCascade(t *testing.T) {
	schema := readSchema(t)

	for _, table := range []string{"products_categories", "products_manufacturers", "reviews"} {
		start := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
		require.NotEqual(t, -1, start, table)

		def := schema[start:]
		def = def[:strings.Index(def, ");")]
		assert.Contains(t, def, "REFERENCES products (product_id) ON DELETE CASCADE", table)
	}
}
