package domain

import "github.com/shopspring/decimal"

// RatingStats — сводка отзывов по одному продукту.
type RatingStats struct {
	ProductID    int64
	ProductName  string
	TotalReviews int64
	AvgRating    decimal.Decimal
}
