package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ManufacturerRepo реализует справочник производителей поверх PostgreSQL.
type ManufacturerRepo struct {
	pool *pgxpool.Pool
}

func NewManufacturerRepo(pool *pgxpool.Pool) *ManufacturerRepo {
	return &ManufacturerRepo{pool: pool}
}

// GetByName ищет производителя по точному названию.
func (m *ManufacturerRepo) GetByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	query := `
		SELECT manufacturer_id, manufacturer_name
		FROM manufacturers
		WHERE manufacturer_name = $1;
	`

	var manufacturer domain.Manufacturer
	err := tr.Conn(ctx, m.pool).QueryRow(ctx, query, name).Scan(&manufacturer.ID, &manufacturer.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &manufacturer, nil
}
