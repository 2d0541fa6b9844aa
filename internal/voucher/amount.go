package voucher

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// R2 rounds an amount to paise, halves away from zero: 1.005 -> 1.01.
func R2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// rate is the combined tax percentage of the rounded amounts, rounded half
// to even. A zero taxable value yields 0.
func rate(taxTotal, taxable decimal.Decimal) int {
	if taxable.IsZero() {
		return 0
	}

	return int(taxTotal.Div(taxable).Mul(hundred).RoundBank(0).IntPart())
}
