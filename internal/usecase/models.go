package usecase

import (
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PRODUCT USECASE

// ProductFilterKind определяет вариант выборки продуктов.
type ProductFilterKind int

const (
	FilterAll ProductFilterKind = iota
	FilterSearch
	FilterCategory
	FilterByID
)

// ProductFilter описывает, какие продукты попадают в выборку.
type ProductFilter struct {
	Kind       ProductFilterKind
	SearchTerm string
	CategoryID int64
	ProductID  int64
}

// ProductPage — страница продуктов вместе с метаданными пагинации.
type ProductPage struct {
	Products   []domain.ProductDetails
	Pagination *domain.Pagination
}

// CreateProductReq — запрос на создание продукта.
// CategoryID и ManufacturerName необязательны; nil означает, что связь не создаётся.
type CreateProductReq struct {
	Name             string
	Price            *decimal.Decimal
	Description      *string
	Stock            *int64
	CategoryID       *int64
	ManufacturerName *string
}

// UpdateProductReq — запрос на полную замену полей продукта и его связей.
type UpdateProductReq struct {
	ID             int64
	Name           string
	Price          *decimal.Decimal
	Description    *string
	Stock          *int64
	CategoryID     *int64
	ManufacturerID *int64
}

// CUSTOMER USECASE

type CustomerWithOrders struct {
	Customer *domain.Customer
	Orders   []domain.Order
}

// EVENTS

type ProductEventType string

const (
	ProductCreated ProductEventType = "product.created"
	ProductUpdated ProductEventType = "product.updated"
	ProductDeleted ProductEventType = "product.deleted"
)

// ProductEvent — событие об изменении продукта. Для удаления Product содержит только ID и имя.
type ProductEvent struct {
	EventID    string
	Type       ProductEventType
	ProductID  int64
	Product    *domain.Product
	OccurredAt time.Time
}

// MAPPERS

func NewProductFilter(kind ProductFilterKind) ProductFilter {
	return ProductFilter{Kind: kind}
}

func NewSearchFilter(term string) ProductFilter {
	return ProductFilter{Kind: FilterSearch, SearchTerm: term}
}

func NewCategoryFilter(categoryID int64) ProductFilter {
	return ProductFilter{Kind: FilterCategory, CategoryID: categoryID}
}

func NewByIDFilter(productID int64) ProductFilter {
	return ProductFilter{Kind: FilterByID, ProductID: productID}
}

func NewProductPage(products []domain.ProductDetails, pagination *domain.Pagination) *ProductPage {
	return &ProductPage{
		Products:   products,
		Pagination: pagination,
	}
}

func NewProductEvent(eventType ProductEventType, product *domain.Product) *ProductEvent {
	return &ProductEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		ProductID:  product.ID,
		Product:    product,
		OccurredAt: time.Now().UTC(),
	}
}

func NewCustomerWithOrders(customer *domain.Customer, orders []domain.Order) *CustomerWithOrders {
	return &CustomerWithOrders{
		Customer: customer,
		Orders:   orders,
	}
}

func (r *CreateProductReq) validationInput() domain.ProductInput {
	return domain.ProductInput{Name: r.Name, Price: r.Price, Stock: r.Stock}
}

func (r *UpdateProductReq) validationInput() domain.ProductInput {
	return domain.ProductInput{Name: r.Name, Price: r.Price, Stock: r.Stock}
}
