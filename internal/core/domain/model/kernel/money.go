package kernel

import "github.com/shopspring/decimal"

// MoneyScale is the number of fraction digits carried by persisted
// monetary values.
const MoneyScale = 2

// RoundMoney normalizes a computed amount to the monetary scale.
// It is applied once at the end of a pricing computation so that
// intermediate arithmetic stays exact.
func RoundMoney(v decimal.Decimal) decimal.Decimal {
	return v.Round(MoneyScale)
}
