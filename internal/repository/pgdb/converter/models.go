package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRowModel — одна строка выборки продукта с присоединёнными категорией и производителем.
// Продукт с несколькими связями даёт несколько строк.
type ProductRowModel struct {
	ProductID        int64           `db:"product_id"`
	Name             string          `db:"name"`
	Price            decimal.Decimal `db:"price"`
	Description      *string         `db:"description"`
	Stock            int64           `db:"stock"`
	CategoryName     *string         `db:"category_name"`
	ManufacturerName *string         `db:"manufacturer_name"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ProductID   int64           `db:"product_id"`
	Name        string          `db:"name"`
	Price       decimal.Decimal `db:"price"`
	Description *string         `db:"description"`
	Stock       int64           `db:"stock"`
}

// CategoryStatsModel — агрегат по категории.
type CategoryStatsModel struct {
	CategoryName  *string         `db:"category_name"`
	TotalProducts int64           `db:"total_products"`
	AvgPrice      decimal.Decimal `db:"avg_price"`
}

// CustomerModel представляет запись таблицы customers в PostgreSQL.
type CustomerModel struct {
	CustomerID int64   `db:"customer_id"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	Address    *string `db:"address"`
}

// OrderModel — заказ с названием способа доставки.
type OrderModel struct {
	OrderID         int64     `db:"order_id"`
	Status          string    `db:"status"`
	OrderDate       time.Time `db:"order_date"`
	DeliveryAddress *string   `db:"delivery_address"`
	ShippingMethod  *string   `db:"shipping_method"`
}

// RatingStatsModel — сводка отзывов по продукту.
type RatingStatsModel struct {
	ProductID    int64           `db:"product_id"`
	ProductName  string          `db:"product_name"`
	TotalReviews int64           `db:"total_reviews"`
	AvgRating    decimal.Decimal `db:"avg_rating"`
}
