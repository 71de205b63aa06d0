package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Fee is a flat amount (Min == Max) or a range charged in Currency.
type Fee struct {
	Min      decimal.Decimal
	Max      decimal.Decimal
	Currency string
}

// FlatFee builds a fee with a single amount.
func FlatFee(amount int64, currency string) Fee {
	d := decimal.NewFromInt(amount)
	return Fee{Min: d, Max: d, Currency: currency}
}

// RangeFee builds a fee that varies between min and max.
func RangeFee(min, max int64, currency string) Fee {
	return Fee{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max), Currency: currency}
}

// IsZero reports whether the fee is free of charge.
func (f Fee) IsZero() bool {
	return f.Min.IsZero() && f.Max.IsZero()
}

// IsRange reports whether the fee varies.
func (f Fee) IsRange() bool {
	return !f.Min.Equal(f.Max)
}

// String renders "0 EUR", "1 EUR" or "15-45 EUR".
func (f Fee) String() string {
	if f.IsRange() {
		return fmt.Sprintf("%s-%s %s", f.Min.String(), f.Max.String(), f.Currency)
	}
	return fmt.Sprintf("%s %s", f.Min.String(), f.Currency)
}

type feeJSON struct {
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
	Currency string          `json:"currency"`
}

func (f Fee) MarshalJSON() ([]byte, error) {
	return json.Marshal(feeJSON(f))
}

func (f *Fee) UnmarshalJSON(data []byte) error {
	var v feeJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Fee(v)
	return nil
}
