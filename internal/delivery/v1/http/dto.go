package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
	"github.com/shopspring/decimal"
)

// Запросы

type createProductRequest struct {
	Name             string          `json:"name"`
	Price            json.RawMessage `json:"price" swaggertype:"number"`
	Description      *string         `json:"description"`
	Stock            json.RawMessage `json:"stock" swaggertype:"integer"`
	CategoryID       *int64          `json:"category_id"`
	ManufacturerName *string         `json:"manufacturer_name"`
}

type updateProductRequest struct {
	Name           string          `json:"name"`
	Price          json.RawMessage `json:"price" swaggertype:"number"`
	Description    *string         `json:"description"`
	Stock          json.RawMessage `json:"stock" swaggertype:"integer"`
	CategoryID     *int64          `json:"category_id"`
	ManufacturerID *int64          `json:"manufacturer_id"`
}

type updateCustomerRequest struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r *createProductRequest) toUseCase() (*usecase.CreateProductReq, error) {
	price, err := parsePrice(r.Price)
	if err != nil {
		return nil, err
	}

	stock, err := parseStock(r.Stock)
	if err != nil {
		return nil, err
	}

	return &usecase.CreateProductReq{
		Name:             r.Name,
		Price:            price,
		Description:      r.Description,
		Stock:            stock,
		CategoryID:       r.CategoryID,
		ManufacturerName: r.ManufacturerName,
	}, nil
}

func (r *updateProductRequest) toUseCase(id int64) (*usecase.UpdateProductReq, error) {
	price, err := parsePrice(r.Price)
	if err != nil {
		return nil, err
	}

	stock, err := parseStock(r.Stock)
	if err != nil {
		return nil, err
	}

	return &usecase.UpdateProductReq{
		ID:             id,
		Name:           r.Name,
		Price:          price,
		Description:    r.Description,
		Stock:          stock,
		CategoryID:     r.CategoryID,
		ManufacturerID: r.ManufacturerID,
	}, nil
}

func (r *updateCustomerRequest) toDomain() domain.CustomerContact {
	return domain.CustomerContact{
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// Ответы

type ProductResponse struct {
	ProductID        int64       `json:"product_id"`
	Name             string      `json:"name"`
	Price            json.Number `json:"price" swaggertype:"number"`
	Description      *string     `json:"description"`
	Stock            int64       `json:"stock"`
	CategoryName     *string     `json:"category_name"`
	ManufacturerName *string     `json:"manufacturer_name"`
}

type PaginationResponse struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int64 `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

type ProductPageResponse struct {
	Products   []ProductResponse  `json:"products"`
	Pagination PaginationResponse `json:"pagination"`
}

type CategoryStatsResponse struct {
	CategoryName  *string     `json:"category_name"`
	TotalProducts int64       `json:"total_products"`
	AvgPrice      json.Number `json:"avg_price" swaggertype:"number"`
}

type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID int64  `json:"product_id"`
}

type DeleteProductResponse struct {
	Message        string `json:"message"`
	DeletedProduct string `json:"deletedProduct"`
}

type CustomerResponse struct {
	CustomerID int64   `json:"customer_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
}

type OrderResponse struct {
	OrderID         int64     `json:"order_id"`
	Status          string    `json:"status"`
	OrderDate       time.Time `json:"order_date"`
	DeliveryAddress *string   `json:"delivery_address"`
	ShippingMethod  *string   `json:"shipping_method"`
}

type CustomerWithOrdersResponse struct {
	Customer CustomerResponse `json:"customer"`
	Orders   []OrderResponse  `json:"orders"`
}

type RatingStatsResponse struct {
	ProductID    int64       `json:"product_id"`
	ProductName  string      `json:"product_name"`
	TotalReviews int64       `json:"total_reviews"`
	AvgRating    json.Number `json:"avg_rating" swaggertype:"number"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// decimalNumber отдаёт decimal числом, а не строкой.
func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toProductResponse(p *domain.ProductDetails) ProductResponse {
	return ProductResponse{
		ProductID:        p.ID,
		Name:             p.Name,
		Price:            decimalNumber(p.Price),
		Description:      p.Description,
		Stock:            p.Stock,
		CategoryName:     p.CategoryName,
		ManufacturerName: p.ManufacturerName,
	}
}

func toProductPageResponse(page *usecase.ProductPage) ProductPageResponse {
	products := make([]ProductResponse, 0, len(page.Products))
	for i := range page.Products {
		products = append(products, toProductResponse(&page.Products[i]))
	}

	pg := page.Pagination
	return ProductPageResponse{
		Products: products,
		Pagination: PaginationResponse{
			CurrentPage:     pg.CurrentPage,
			TotalPages:      pg.TotalPages,
			TotalItems:      pg.TotalItems,
			ItemsPerPage:    pg.ItemsPerPage,
			HasNextPage:     pg.HasNextPage,
			HasPreviousPage: pg.HasPreviousPage,
		},
	}
}

func toCategoryStatsResponse(stats []domain.CategoryStats) []CategoryStatsResponse {
	res := make([]CategoryStatsResponse, 0, len(stats))
	for _, s := range stats {
		res = append(res, CategoryStatsResponse{
			CategoryName:  s.CategoryName,
			TotalProducts: s.TotalProducts,
			AvgPrice:      decimalNumber(s.AvgPrice),
		})
	}

	return res
}

func toCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}
}

func toCustomersResponse(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		res = append(res, toCustomerResponse(&customers[i]))
	}

	return res
}

func toOrdersResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderResponse{
			OrderID:         o.ID,
			Status:          o.Status,
			OrderDate:       o.OrderDate,
			DeliveryAddress: o.DeliveryAddress,
			ShippingMethod:  o.ShippingMethod,
		})
	}

	return res
}

func toRatingStatsResponse(stats []domain.RatingStats) []RatingStatsResponse {
	res := make([]RatingStatsResponse, 0, len(stats))
	for _, s := range stats {
		res = append(res, RatingStatsResponse{
			ProductID:    s.ProductID,
			ProductName:  s.ProductName,
			TotalReviews: s.TotalReviews,
			AvgRating:    decimalNumber(s.AvgRating),
		})
	}

	return res
}
