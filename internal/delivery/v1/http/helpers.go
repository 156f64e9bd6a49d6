package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

var (
	badRequestErrors = []error{
		e.ErrStatusBadRequest,
		e.ErrInvalidJSON,
		e.ErrProductNameRequired,
		e.ErrPriceMustBePositive,
		e.ErrPriceNotNumber,
		e.ErrStockMustBeNonNegative,
		e.ErrStockNotInteger,
		e.ErrUnknownManufacturer,
		e.ErrInvalidProductID,
		e.ErrInvalidCategoryID,
		e.ErrInvalidManufacturerID,
		e.ErrInvalidPagination,
		e.ErrSearchTermRequired,
		e.ErrInvalidEmail,
		e.ErrPhoneRequired,
		e.ErrAddressRequired,
	}

	notFoundErrors = []error{
		e.ErrProductNotFound,
		e.ErrProductsNotFound,
		e.ErrCategoryNotFound,
		e.ErrNoProductsInCategory,
		e.ErrCustomerNotFound,
		e.ErrNoStatistics,
		e.ErrNoRatingStatistics,
	}
)

// ToHTTPResponse сопоставляет ошибку со статусом и текстом ответа.
// Неизвестные ошибки превращаются в 500 с общим текстом.
func ToHTTPResponse(err error) (int, string) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, target.Error()
		}
	}

	return http.StatusInternalServerError, e.ErrInternalServerError.Error()
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			switch typeErr.Field {
			case "category_id":
				return e.Wrap(whereami.WhereAmI(), e.ErrInvalidCategoryID)
			case "manufacturer_id":
				return e.Wrap(whereami.WhereAmI(), e.ErrInvalidManufacturerID)
			}
		}

		return e.Wrap(err.Error(), e.ErrInvalidJSON)
	}

	return nil
}

// parsePrice принимает число или числовую строку. Отсутствующее значение и null дают nil.
func parsePrice(raw json.RawMessage) (*decimal.Decimal, error) {
	value, ok := rawScalar(raw)
	if !ok {
		return nil, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrPriceNotNumber)
	}

	return &d, nil
}

// parseStock принимает целое число или строку с целым числом в пределах int64.
// Отсутствующее значение и null дают nil.
func parseStock(raw json.RawMessage) (*int64, error) {
	value, ok := rawScalar(raw)
	if !ok {
		return nil, nil
	}

	d, err := decimal.NewFromString(value)
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrStockNotInteger)
	}

	stock := d.IntPart()
	return &stock, nil
}

// rawScalar возвращает текст JSON-скаляра без кавычек.
// false означает, что значение не передано: поле отсутствует, null или пустая строка.
func rawScalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	return string(raw), true
}

// parseIDParam разбирает положительный целочисленный идентификатор из пути.
func parseIDParam(raw string, invalid error) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(raw, invalid)
	}

	return id, nil
}
