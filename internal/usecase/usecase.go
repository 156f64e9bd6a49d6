package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-service/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context, page domain.PageRequest) (*ProductPage, error)
	SearchProducts(ctx context.Context, term string, page domain.PageRequest) (*ProductPage, error)
	ListProductsByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (*ProductPage, error)
	GetProduct(ctx context.Context, id int64) (*domain.ProductDetails, error)
	ProductStats(ctx context.Context) ([]domain.CategoryStats, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (int64, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) error
	DeleteProduct(ctx context.Context, id int64) (*domain.Product, error)
}

type CustomerUC interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomerWithOrders(ctx context.Context, id int64) (*CustomerWithOrders, error)
	UpdateCustomerContact(ctx context.Context, id int64, contact domain.CustomerContact) error
	ListCustomerOrders(ctx context.Context, id int64) ([]domain.Order, error)
}

type ReviewUC interface {
	RatingStats(ctx context.Context) ([]domain.RatingStats, error)
}
