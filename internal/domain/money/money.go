// Package money holds the monetary amount value object shared by the
// checkout and wallet authorization domains.
package money

import "fmt"

// Amount is a decimal amount in a specific currency. The value is kept as
// the wire string to avoid float rounding on pass-through.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

func New(value, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

func (a Amount) IsZero() bool {
	return a.Value == "" && a.Currency == ""
}

func (a Amount) String() string {
	return fmt.Sprintf("%s %s", a.Value, a.Currency)
}
