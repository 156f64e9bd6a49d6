package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-service/pkg/e"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Customer описывает покупателя
type Customer struct {
	ID      int64
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// CustomerContact — контактные данные, которые покупатель может изменить.
type CustomerContact struct {
	Email   string
	Phone   string
	Address string
}

// Order описывает заказ покупателя вместе с названием способа доставки.
type Order struct {
	ID              int64
	Status          string
	OrderDate       time.Time
	DeliveryAddress *string
	ShippingMethod  *string
}

// Validate проверяет контактные данные. Возвращается первая найденная ошибка.
func (c CustomerContact) Validate() error {
	if !emailPattern.MatchString(c.Email) {
		return e.ErrInvalidEmail
	}

	if strings.TrimSpace(c.Phone) == "" {
		return e.ErrPhoneRequired
	}

	if strings.TrimSpace(c.Address) == "" {
		return e.ErrAddressRequired
	}

	return nil
}
