package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/DRSN-tech/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	customerUsecase usecase.CustomerUC
	logger          logger.Logger
}

func NewCustomerHandler(customerUsecase usecase.CustomerUC, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase, logger: logger}
}

// listCustomers
//
//	@Summary	Список покупателей
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	CustomerResponse
//	@Router		/customers [get]
func (c *CustomerHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.customerUsecase.ListCustomers(r.Context())
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCustomersResponse(customers))
}

// getCustomer
//
//	@Summary	Покупатель с историей заказов
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"ID покупателя"
//	@Success	200	{object}	CustomerWithOrdersResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (c *CustomerHandler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrCustomerNotFound)
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	res, err := c.customerUsecase.GetCustomerWithOrders(r.Context(), id)
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, CustomerWithOrdersResponse{
		Customer: toCustomerResponse(res.Customer),
		Orders:   toOrdersResponse(res.Orders),
	})
}

// updateCustomer
//
//	@Summary	Обновление контактов покупателя
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID покупателя"
//	@Param		contact	body		updateCustomerRequest	true	"Контакты"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/customers/{id} [put]
func (c *CustomerHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrCustomerNotFound)
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	var body updateCustomerRequest
	if err := decodeJSON(w, r, &body); err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	if err := c.customerUsecase.UpdateCustomerContact(r.Context(), id, body.toDomain()); err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, MessageResponse{Message: "Customer details updated"})
}

// listCustomerOrders
//
//	@Summary	Заказы покупателя
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"ID покупателя"
//	@Success	200	{array}		OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id}/orders [get]
func (c *CustomerHandler) listCustomerOrders(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"), e.ErrCustomerNotFound)
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	orders, err := c.customerUsecase.ListCustomerOrders(r.Context(), id)
	if err != nil {
		writeFailure(w, r, c.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrdersResponse(orders))
}
