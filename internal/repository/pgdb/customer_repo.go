package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей и их заказов поверх PostgreSQL.
type CustomerRepo struct {
	pool *pgxpool.Pool
}

func NewCustomerRepo(pool *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

func (c *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address
		FROM customers
		ORDER BY customer_id;
	`

	rows, err := tr.Conn(ctx, c.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.CustomerModel, 0)
	for rows.Next() {
		var m converter.CustomerModel
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.Email, &m.Phone, &m.Address); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToCustomerEntities(models), nil
}

func (c *CustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	query := `
		SELECT customer_id, name, email, phone, address
		FROM customers
		WHERE customer_id = $1;
	`

	var m converter.CustomerModel
	err := tr.Conn(ctx, c.pool).QueryRow(ctx, query, id).
		Scan(&m.CustomerID, &m.Name, &m.Email, &m.Phone, &m.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToCustomerEntity(&m), nil
}

func (c *CustomerRepo) UpdateContact(ctx context.Context, id int64, contact domain.CustomerContact) error {
	query := `
		UPDATE customers
		SET email = $2, phone = $3, address = $4
		WHERE customer_id = $1;
	`

	tag, err := tr.Conn(ctx, c.pool).Exec(ctx, query, id, contact.Email, contact.Phone, contact.Address)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
	}

	return nil
}

// ListOrders возвращает заказы покупателя от новых к старым.
func (c *CustomerRepo) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	query := `
		SELECT o.order_id, o.status, o.order_date, o.delivery_address, sm.shipping_method
		FROM orders o
		LEFT JOIN shipping_methods sm ON sm.shipping_method_id = o.shipping_method_id
		WHERE o.customer_id = $1
		ORDER BY o.order_date DESC, o.order_id DESC;
	`

	rows, err := tr.Conn(ctx, c.pool).Query(ctx, query, customerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderModel, 0)
	for rows.Next() {
		var m converter.OrderModel
		if err := rows.Scan(&m.OrderID, &m.Status, &m.OrderDate, &m.DeliveryAddress, &m.ShippingMethod); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return converter.ToOrderEntities(models), nil
}
