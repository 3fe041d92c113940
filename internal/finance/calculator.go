// Package finance holds the invoice amount arithmetic. All money math is
// done in decimal space and rounded to 2 decimal places, half away from
// zero.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/shikma-build/budgetbook/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// FinalAmount computes the payable amount for an invoice from its base
// amount, VAT percentage and discount.
//
// The ordering is discount-after-VAT: the gross amount is
// base * (1 + vat/100), and the discount is then subtracted from the gross
// (flat) or taken as a percentage of the gross.
func FinalAmount(amount, vatPercent, discount float64, discountType domain.DiscountType) float64 {
	gross := decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(vatPercent).Div(hundred)))

	if discount > 0 {
		d := decimal.NewFromFloat(discount)
		if discountType == domain.DiscountPercentage {
			gross = gross.Sub(gross.Mul(d).Div(hundred))
		} else {
			gross = gross.Sub(d)
		}
	}

	return round2(gross)
}

// InvoiceFinalAmount computes the final amount for an existing invoice record
func InvoiceFinalAmount(inv *domain.Invoice) float64 {
	return FinalAmount(inv.Amount, inv.Vat, inv.Discount, inv.DiscountType)
}

// Round2 rounds a monetary amount to 2 decimal places, half away from zero
func Round2(v float64) float64 {
	return round2(decimal.NewFromFloat(v))
}

// Sum adds monetary amounts in decimal space and rounds the result
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return round2(total)
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
