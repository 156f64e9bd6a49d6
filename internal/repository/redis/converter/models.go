package converter

import "github.com/shopspring/decimal"

// ProductRedisModel — карточка продукта в кэше. Цена хранится строкой без потери точности.
type ProductRedisModel struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Description      *string         `json:"description,omitempty"`
	Stock            int64           `json:"stock"`
	CategoryName     *string         `json:"category_name,omitempty"`
	ManufacturerName *string         `json:"manufacturer_name,omitempty"`
}
