package domain

import (
	"strings"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/shopspring/decimal"
)

// ProductInput — поля продукта, которые проверяются перед записью.
// nil означает, что поле не передано.
type ProductInput struct {
	Name  string
	Price *decimal.Decimal
	Stock *int64
}

// ValidateProduct проверяет поля по порядку: имя, цена, остаток. Возвращается первая ошибка.
// Цена должна быть строго больше нуля, остаток может быть нулевым.
func ValidateProduct(in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return e.ErrProductNameRequired
	}

	if in.Price == nil || !in.Price.IsPositive() {
		return e.ErrPriceMustBePositive
	}

	if in.Stock == nil || *in.Stock < 0 {
		return e.ErrStockMustBeNonNegative
	}

	return nil
}
