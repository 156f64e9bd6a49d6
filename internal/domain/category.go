package domain

import "github.com/shopspring/decimal"

// Category описывает категорию продукта.
// Ключ категории задаёт клиент при создании продукта, название может отсутствовать.
type Category struct {
	ID   int64
	Name *string
}

func NewCategory(id int64) *Category {
	return &Category{
		ID: id,
	}
}

// CategoryStats — агрегат по продуктам одной категории.
type CategoryStats struct {
	CategoryName  *string
	TotalProducts int64
	AvgPrice      decimal.Decimal
}
