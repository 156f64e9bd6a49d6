package domain

import "github.com/shopspring/decimal"

// Product описывает продукт каталога
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	Description *string
	Stock       int64
}

// ProductDetails — продукт вместе с названиями связанной категории и производителя.
// Связей может не быть, тогда соответствующее поле nil.
type ProductDetails struct {
	Product
	CategoryName     *string
	ManufacturerName *string
}

func NewProduct(name string, price decimal.Decimal, description *string, stock int64) *Product {
	return &Product{
		Name:        name,
		Price:       price,
		Description: description,
		Stock:       stock,
	}
}
