package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const ratingStatsQuery = `
	SELECT p.product_id, p.name, COUNT(r.review_id), ROUND(COALESCE(AVG(r.rating), 0), 2)
	FROM products p
	LEFT JOIN reviews r ON r.product_id = p.product_id
	GROUP BY p.product_id, p.name
	ORDER BY p.product_id;
`

// ReviewRepo реализует агрегаты по отзывам поверх PostgreSQL.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// RatingStats возвращает сводку по каждому продукту, включая продукты без отзывов.
func (r *ReviewRepo) RatingStats(ctx context.Context) ([]domain.RatingStats, error) {
	rows, err := tr.Conn(ctx, r.pool).Query(ctx, ratingStatsQuery)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.RatingStatsModel, 0)
	for rows.Next() {
		var m converter.RatingStatsModel
		if err := rows.Scan(&m.ProductID, &m.ProductName, &m.TotalReviews, &m.AvgRating); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToRatingStatsEntities(models), nil
}
