package pgdb

import (
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog-service/internal/domain"
	"github.com/DRSN-tech/catalog-service/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-service/internal/usecase"
)

// ProductQuery — SQL-запрос с позиционными аргументами.
type ProductQuery struct {
	SQL  string
	Args []any
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// whereBuilder собирает условия WHERE с нумерацией плейсхолдеров $1, $2, ...
type whereBuilder struct {
	conditions []string
	args       []any
	argIndex   int
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{argIndex: 1}
}

// add добавляет условие; каждый %s в cond заменяется следующим плейсхолдером.
func (wb *whereBuilder) add(cond string, arg any) string {
	placeholder := fmt.Sprintf("$%d", wb.argIndex)
	wb.argIndex++
	wb.args = append(wb.args, arg)
	wb.conditions = append(wb.conditions, strings.ReplaceAll(cond, "%s", placeholder))
	return placeholder
}

// next резервирует плейсхолдер для аргумента, который не входит в WHERE (LIMIT, OFFSET).
func (wb *whereBuilder) next(arg any) string {
	placeholder := fmt.Sprintf("$%d", wb.argIndex)
	wb.argIndex++
	wb.args = append(wb.args, arg)
	return placeholder
}

func (wb *whereBuilder) build() (string, []any) {
	if len(wb.conditions) == 0 {
		return "", wb.args
	}

	return " WHERE " + strings.Join(wb.conditions, " AND "), wb.args
}

// productFilterWhere переводит фильтр в условия по таблице products с алиасом p.
// Для фильтра по категории возвращает плейсхолдер идентификатора категории.
func productFilterWhere(filter usecase.ProductFilter) (wb *whereBuilder, categoryArg string) {
	wb = newWhereBuilder()

	switch filter.Kind {
	case usecase.FilterSearch:
		wb.add(`LOWER(p.name) LIKE LOWER(%s) ESCAPE '\'`, "%"+likeEscaper.Replace(filter.SearchTerm)+"%")
	case usecase.FilterCategory:
		categoryArg = wb.add(
			`EXISTS (SELECT 1 FROM products_categories fc WHERE fc.product_id = p.product_id AND fc.category_id = %s)`,
			filter.CategoryID,
		)
	case usecase.FilterByID:
		wb.add(`p.product_id = %s`, filter.ProductID)
	}

	return wb, categoryArg
}

// BuildProductListing строит запрос страницы продуктов с названиями категории и производителя.
// Сначала выбираются идентификаторы продуктов страницы, затем к ним присоединяются связи,
// поэтому LIMIT считает продукты, а не строки соединения. Строки одного продукта
// нужно схлопнуть через CollapseProductRows.
func BuildProductListing(filter usecase.ProductFilter, page domain.PageRequest) ProductQuery {
	wb, categoryArg := productFilterWhere(filter)
	where, _ := wb.build()

	limit, offset := page.Limit, page.Offset()
	if filter.Kind == usecase.FilterByID {
		limit, offset = 1, 0
	}
	limitArg := wb.next(limit)
	offsetArg := wb.next(offset)

	categoryJoin := "pc.product_id = p.product_id"
	if categoryArg != "" {
		categoryJoin += " AND pc.category_id = " + categoryArg
	}

	sql := fmt.Sprintf(`
	WITH page AS (
		SELECT p.product_id
		FROM products p%s
		ORDER BY p.product_id ASC
		LIMIT %s OFFSET %s
	)
	SELECT p.product_id, p.name, p.price, p.description, p.stock,
		c.category_name, m.manufacturer_name
	FROM page
	JOIN products p ON p.product_id = page.product_id
	LEFT JOIN products_categories pc ON %s
	LEFT JOIN categories c ON c.category_id = pc.category_id
	LEFT JOIN products_manufacturers pm ON pm.product_id = p.product_id
	LEFT JOIN manufacturers m ON m.manufacturer_id = pm.manufacturer_id
	ORDER BY p.product_id ASC, pc.category_id ASC, pm.manufacturer_id ASC`,
		where, limitArg, offsetArg, categoryJoin,
	)

	return ProductQuery{SQL: sql, Args: wb.args}
}

// BuildProductCount строит запрос общего числа продуктов под фильтром.
// Подсчёт не зависит от запрошенной страницы.
func BuildProductCount(filter usecase.ProductFilter) ProductQuery {
	wb, _ := productFilterWhere(filter)
	where, args := wb.build()

	return ProductQuery{
		SQL:  "SELECT COUNT(*) FROM products p" + where,
		Args: args,
	}
}

// CollapseProductRows объединяет строки с одинаковым product_id в одну карточку.
// Сохраняется порядок первого появления; для категории и производителя берётся
// первое непустое значение.
func CollapseProductRows(rows []converter.ProductRowModel) []domain.ProductDetails {
	result := make([]domain.ProductDetails, 0, len(rows))
	index := make(map[int64]int, len(rows))

	for i := range rows {
		row := &rows[i]

		pos, seen := index[row.ProductID]
		if !seen {
			index[row.ProductID] = len(result)
			result = append(result, converter.ToProductDetails(row))
			continue
		}

		existing := &result[pos]
		if existing.CategoryName == nil && row.CategoryName != nil {
			existing.CategoryName = row.CategoryName
		}
		if existing.ManufacturerName == nil && row.ManufacturerName != nil {
			existing.ManufacturerName = row.ManufacturerName
		}
	}

	return result
}
