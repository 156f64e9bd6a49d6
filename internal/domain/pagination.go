package domain

import (
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-service/pkg/e"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination — метаданные страницы, которые возвращаются вместе со списком.
type Pagination struct {
	CurrentPage     int
	TotalPages      int64
	TotalItems      int64
	ItemsPerPage    int
	HasNextPage     bool
	HasPreviousPage bool
}

// NewPagination считает метаданные страницы по общему числу элементов.
// page и limit должны быть положительными, иначе возвращается e.ErrInvalidPagination.
func NewPagination(total int64, page, limit int) (*Pagination, error) {
	if page <= 0 || limit <= 0 || total < 0 {
		return nil, e.ErrInvalidPagination
	}

	l := int64(limit)
	totalPages := (total + l - 1) / l

	return &Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      total,
		ItemsPerPage:    limit,
		HasNextPage:     int64(page) < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// PageRequest — запрошенная страница после нормализации.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest разбирает page и limit из строки запроса.
// Пустое, нечисловое или меньшее единицы значение заменяется значением по умолчанию,
// limit дополнительно ограничен сверху MaxLimit.
func NewPageRequest(rawPage, rawLimit string) PageRequest {
	return PageRequest{
		Page:  parsePositive(rawPage, DefaultPage),
		Limit: min(parsePositive(rawLimit, DefaultLimit), MaxLimit),
	}
}

// Offset возвращает число пропускаемых строк.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func parsePositive(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 1 {
		return def
	}

	return v
}
