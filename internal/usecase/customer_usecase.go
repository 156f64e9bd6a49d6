package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
)

// CustomerUseCase реализует операции над покупателями и их заказами.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	logger       logger.Logger
}

func NewCustomerUC(customerRepo CustomerRepository, logger logger.Logger) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (c *CustomerUseCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	const op = "CustomerUseCase.ListCustomers"

	customers, err := c.customerRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return customers, nil
}

// GetCustomerWithOrders возвращает покупателя вместе с историей заказов.
func (c *CustomerUseCase) GetCustomerWithOrders(ctx context.Context, id int64) (*CustomerWithOrders, error) {
	const op = "CustomerUseCase.GetCustomerWithOrders"

	customer, err := c.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := c.customerRepo.ListOrders(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewCustomerWithOrders(customer, orders), nil
}

// UpdateCustomerContact проверяет и сохраняет новые контактные данные.
func (c *CustomerUseCase) UpdateCustomerContact(ctx context.Context, id int64, contact domain.CustomerContact) error {
	const op = "CustomerUseCase.UpdateCustomerContact"

	if err := contact.Validate(); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.customerRepo.UpdateContact(ctx, id, contact); err != nil {
		return e.Wrap(op, err)
	}

	c.logger.Infof("customer %d contact details updated", id)
	return nil
}

// ListCustomerOrders возвращает заказы покупателя; для неизвестного покупателя список пуст.
func (c *CustomerUseCase) ListCustomerOrders(ctx context.Context, id int64) ([]domain.Order, error) {
	const op = "CustomerUseCase.ListCustomerOrders"

	orders, err := c.customerRepo.ListOrders(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}
