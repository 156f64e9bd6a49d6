package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const pgForeignKeyViolation = "23503"

const (
	deleteProductQuery = `
		DELETE FROM products
		WHERE product_id = $1
		RETURNING product_id, name, price, description, stock;
	`

	// Категории без продуктов попадают в выборку с нулевыми значениями.
	categoryStatsQuery = `
		SELECT c.category_name, COUNT(p.product_id), ROUND(COALESCE(AVG(p.price), 0), 2)
		FROM categories c
		LEFT JOIN products_categories pc ON pc.category_id = c.category_id
		LEFT JOIN products p ON p.product_id = pc.product_id
		GROUP BY c.category_id, c.category_name
		ORDER BY c.category_id;
	`
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// List возвращает страницу карточек продуктов под фильтром.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter, page domain.PageRequest) ([]domain.ProductDetails, error) {
	q := BuildProductListing(filter, page)

	rows, err := tr.Conn(ctx, p.pool).Query(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductRowModel, 0)
	for rows.Next() {
		var m converter.ProductRowModel
		if err := rows.Scan(
			&m.ProductID, &m.Name, &m.Price, &m.Description, &m.Stock, &m.CategoryName, &m.ManufacturerName,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return CollapseProductRows(models), nil
}

// Count возвращает число продуктов под фильтром.
func (p *ProductRepo) Count(ctx context.Context, filter usecase.ProductFilter) (int64, error) {
	q := BuildProductCount(filter)

	var total int64
	if err := tr.Conn(ctx, p.pool).QueryRow(ctx, q.SQL, q.Args...).Scan(&total); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return total, nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.ProductDetails, error) {
	products, err := p.List(ctx, usecase.NewByIDFilter(id), domain.PageRequest{Page: 1, Limit: 1})
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return &products[0], nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (int64, error) {
	query := `
		INSERT INTO products (name, price, description, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING product_id;
	`

	var id int64
	if err := tr.Conn(ctx, p.pool).
		QueryRow(ctx, query, product.Name, product.Price, product.Description, product.Stock).
		Scan(&id); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, description = $4, stock = $5
		WHERE product_id = $1;
	`

	tag, err := tr.Conn(ctx, p.pool).
		Exec(ctx, query, product.ID, product.Name, product.Price, product.Description, product.Stock)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrUpdateTargetMissing)
	}

	return nil
}

// Delete удаляет продукт; связи удаляются каскадно.
func (p *ProductRepo) Delete(ctx context.Context, id int64) (*domain.Product, error) {
	var m converter.ProductModel
	err := tr.Conn(ctx, p.pool).QueryRow(ctx, deleteProductQuery, id).
		Scan(&m.ProductID, &m.Name, &m.Price, &m.Description, &m.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToProductEntity(&m), nil
}

func (p *ProductRepo) LinkCategory(ctx context.Context, productID, categoryID int64) error {
	query := `
		INSERT INTO products_categories (product_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`

	if _, err := tr.Conn(ctx, p.pool).Exec(ctx, query, productID, categoryID); err != nil {
		return e.Wrap(whereami.WhereAmI(), mapForeignKey(err, e.ErrInvalidCategoryID))
	}

	return nil
}

// ReplaceCategory заменяет все категории продукта одной.
func (p *ProductRepo) ReplaceCategory(ctx context.Context, productID, categoryID int64) error {
	if _, err := tr.Conn(ctx, p.pool).
		Exec(ctx, `DELETE FROM products_categories WHERE product_id = $1;`, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.LinkCategory(ctx, productID, categoryID)
}

func (p *ProductRepo) LinkManufacturer(ctx context.Context, productID, manufacturerID int64) error {
	query := `
		INSERT INTO products_manufacturers (product_id, manufacturer_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
	`

	if _, err := tr.Conn(ctx, p.pool).Exec(ctx, query, productID, manufacturerID); err != nil {
		return e.Wrap(whereami.WhereAmI(), mapForeignKey(err, e.ErrInvalidManufacturerID))
	}

	return nil
}

// ReplaceManufacturer заменяет всех производителей продукта одним.
func (p *ProductRepo) ReplaceManufacturer(ctx context.Context, productID, manufacturerID int64) error {
	if _, err := tr.Conn(ctx, p.pool).
		Exec(ctx, `DELETE FROM products_manufacturers WHERE product_id = $1;`, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.LinkManufacturer(ctx, productID, manufacturerID)
}

// CategoryStats возвращает число продуктов и среднюю цену по каждой категории.
func (p *ProductRepo) CategoryStats(ctx context.Context) ([]domain.CategoryStats, error) {
	rows, err := tr.Conn(ctx, p.pool).Query(ctx, categoryStatsQuery)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CategoryStatsModel, 0)
	for rows.Next() {
		var m converter.CategoryStatsModel
		if err := rows.Scan(&m.CategoryName, &m.TotalProducts, &m.AvgPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToCategoryStatsEntities(models), nil
}

// mapForeignKey заменяет нарушение внешнего ключа на доменную ошибку.
func mapForeignKey(err, target error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return target
	}

	return err
}
