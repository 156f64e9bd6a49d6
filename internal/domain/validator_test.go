package domain

import (
	"testing"

	"github.com/DRSN-tech/catalog-service/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func stock(v int64) *int64 {
	return &v
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name string
		in   ProductInput
		want error
	}{
		{"empty name", ProductInput{Name: "", Price: price("10"), Stock: stock(1)}, e.ErrProductNameRequired},
		{"blank name", ProductInput{Name: "   ", Price: price("10"), Stock: stock(1)}, e.ErrProductNameRequired},
		{"zero price", ProductInput{Name: "A", Price: price("0"), Stock: stock(1)}, e.ErrPriceMustBePositive},
		{"negative price", ProductInput{Name: "A", Price: price("-0.01"), Stock: stock(1)}, e.ErrPriceMustBePositive},
		{"missing price", ProductInput{Name: "A", Stock: stock(1)}, e.ErrPriceMustBePositive},
		{"negative stock", ProductInput{Name: "A", Price: price("10"), Stock: stock(-1)}, e.ErrStockMustBeNonNegative},
		{"missing stock", ProductInput{Name: "A", Price: price("10")}, e.ErrStockMustBeNonNegative},
		{"zero stock", ProductInput{Name: "A", Price: price("10"), Stock: stock(0)}, nil},
		{"fractional price", ProductInput{Name: "A", Price: price("0.01"), Stock: stock(5)}, nil},
		{"sub-cent price", ProductInput{Name: "A", Price: price("0.001"), Stock: stock(5)}, nil},
		{"large price", ProductInput{Name: "A", Price: price("123456789012345.67"), Stock: stock(5)}, nil},
		{"stock above int32", ProductInput{Name: "A", Price: price("10"), Stock: stock(2147483648)}, nil},
		{"name checked first", ProductInput{Name: "", Price: price("0"), Stock: stock(-1)}, e.ErrProductNameRequired},
		{"price checked before stock", ProductInput{Name: "A", Price: price("0"), Stock: stock(-1)}, e.ErrPriceMustBePositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCustomerContact_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   CustomerContact
		want error
	}{
		{"valid", CustomerContact{Email: "anna.k@example.se", Phone: "070-123", Address: "Storgatan 1"}, nil},
		{"missing email", CustomerContact{Phone: "070-123", Address: "Storgatan 1"}, e.ErrInvalidEmail},
		{"no tld", CustomerContact{Email: "anna@example", Phone: "070-123", Address: "Storgatan 1"}, e.ErrInvalidEmail},
		{"short tld", CustomerContact{Email: "anna@example.s", Phone: "070-123", Address: "Storgatan 1"}, e.ErrInvalidEmail},
		{"plus in local part", CustomerContact{Email: "anna+x@example.se", Phone: "070-123", Address: "Storgatan 1"}, e.ErrInvalidEmail},
		{"blank phone", CustomerContact{Email: "anna@example.se", Phone: "  ", Address: "Storgatan 1"}, e.ErrPhoneRequired},
		{"blank address", CustomerContact{Email: "anna@example.se", Phone: "070-123", Address: ""}, e.ErrAddressRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
