package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("an internal error occurred")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибка, которую транзакция поднимает при обновлении несуществующего продукта.
	// Наружу отдаётся как 500, тело ответа содержит только общий текст.
	ErrUpdateTargetMissing = fmt.Errorf("product to update was not found")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrInvalidJSON            = fmt.Errorf("invalid JSON body")
	ErrProductNameRequired    = fmt.Errorf("product name must not be empty")
	ErrPriceMustBePositive    = fmt.Errorf("price must be greater than 0")
	ErrPriceNotNumber         = fmt.Errorf("price must be a number")
	ErrStockMustBeNonNegative = fmt.Errorf("stock must be a non-negative number")
	ErrStockNotInteger        = fmt.Errorf("stock must be an integer")
	ErrUnknownManufacturer    = fmt.Errorf("unknown manufacturer")
	ErrInvalidProductID       = fmt.Errorf("invalid product id")
	ErrInvalidCategoryID      = fmt.Errorf("invalid category id")
	ErrInvalidManufacturerID  = fmt.Errorf("invalid manufacturer id")
	ErrInvalidPagination      = fmt.Errorf("page and limit must be positive")
	ErrSearchTermRequired     = fmt.Errorf("search term is missing")
	ErrInvalidEmail           = fmt.Errorf("invalid email format")
	ErrPhoneRequired          = fmt.Errorf("phone number is required")
	ErrAddressRequired        = fmt.Errorf("address is required")

	// 404 Not Found
	ErrProductNotFound      = fmt.Errorf("product not found")
	ErrProductsNotFound     = fmt.Errorf("no products found")
	ErrCategoryNotFound     = fmt.Errorf("category not found")
	ErrNoProductsInCategory = fmt.Errorf("no products found in this category")
	ErrCustomerNotFound     = fmt.Errorf("customer not found")
	ErrNoStatistics         = fmt.Errorf("no statistics available")
	ErrNoRatingStatistics   = fmt.Errorf("no rating statistics available")
	ErrNotFound             = fmt.Errorf("not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
