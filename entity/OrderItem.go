package entity

import (
	"bytes"
	"math"
	"strconv"
)

// OrderLineItem is a dish as it was ordered. BasePrice is copied from the
// menu at order time and is not joined back to MenuItem.
type OrderLineItem struct {
	MenuID    uint              `json:"menuId"`
	Name      string            `json:"name"`
	BasePrice float64           `json:"base_price"`
	Options   map[string]string `json:"options"`
	Quantity  Quantity          `json:"quantity,omitempty"`
}

// Quantity holds a positive count or 0 when the payload carried nothing usable.
type Quantity int

// Effective is the count used for totals; anything below 1 counts as 1.
func (q Quantity) Effective() int {
	if q < 1 {
		return 1
	}
	return int(q)
}

// UnmarshalJSON accepts numbers and numeric strings. Missing, fractional,
// negative or non-numeric values decode to 0 instead of failing the payload.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	*q = 0
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 1 || n != math.Trunc(n) || n > math.MaxInt32 {
		return nil
	}
	*q = Quantity(n)
	return nil
}
