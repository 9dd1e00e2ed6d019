package services

import (
	"restaurant-pos/entity"

	"github.com/shopspring/decimal"
)

type Summary struct {
	TotalCount   int     `json:"totalCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ComputeSummary adds up quantities and base_price × quantity over every line,
// plus each order's extra charge once. Money is summed in decimal so that
// prices like 0.1 do not drift.
func ComputeSummary(orders []entity.Order) Summary {
	count := 0
	revenue := decimal.Zero
	for _, o := range orders {
		for _, it := range o.Items {
			qty := it.Quantity.Effective()
			count += qty
			line := decimal.NewFromFloat(it.BasePrice).Mul(decimal.NewFromInt(int64(qty)))
			revenue = revenue.Add(line)
		}
		revenue = revenue.Add(decimal.NewFromFloat(o.ExtraCharge))
	}
	return Summary{TotalCount: count, TotalRevenue: revenue.InexactFloat64()}
}
