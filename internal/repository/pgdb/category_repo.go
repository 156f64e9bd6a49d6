package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const ensureCategoryQuery = `
	INSERT INTO categories (category_id, category_name)
	VALUES ($1, $2)
	ON CONFLICT (category_id) DO NOTHING;
`

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

func (c *CategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := tr.Conn(ctx, c.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE category_id = $1);`, id).
		Scan(&exists); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// EnsureExists идемпотентно создаёт категорию с заданным ключом без названия.
// Существующая категория не изменяется.
func (c *CategoryRepo) EnsureExists(ctx context.Context, category *domain.Category) error {
	if _, err := tr.Conn(ctx, c.pool).Exec(ctx, ensureCategoryQuery, category.ID, category.Name); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
