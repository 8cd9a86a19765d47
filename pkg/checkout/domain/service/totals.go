package service

import (
	"github.com/shopspring/decimal"

	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
)

func ComputeTotals(subtotal decimal.Decimal, pricing model.Pricing) model.Totals {
	tax := subtotal.Mul(pricing.TaxRate)
	grand := subtotal.Add(pricing.ShippingFee)
	if pricing.TaxPolicy == model.TaxIncludedInGrandTotal {
		grand = grand.Add(tax)
	}

	return model.Totals{
		Subtotal:    subtotal,
		ShippingFee: pricing.ShippingFee,
		Tax:         tax,
		GrandTotal:  grand,
	}
}
