package model

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
)

type TaxPolicy int

const (
	// TaxExcludedFromGrandTotal shows tax as a line item but leaves it out of
	// the grand total.
	TaxExcludedFromGrandTotal TaxPolicy = iota
	TaxIncludedInGrandTotal
)

func (p TaxPolicy) String() string {
	if p == TaxIncludedInGrandTotal {
		return "included"
	}
	return "excluded"
}

type Pricing struct {
	ShippingFee decimal.Decimal
	TaxRate     decimal.Decimal
	TaxPolicy   TaxPolicy
}

func DefaultPricing() Pricing {
	return Pricing{
		ShippingFee: decimal.RequireFromString("5.99"),
		TaxRate:     decimal.RequireFromString("0.20"),
		TaxPolicy:   TaxExcludedFromGrandTotal,
	}
}

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Tax         decimal.Decimal `json:"tax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
}

type Order struct {
	ID       uuid.UUID        `json:"id"`
	Number   string           `json:"orderNumber"`
	Items    []cartmodel.Item `json:"items"`
	Totals   Totals           `json:"totals"`
	Total    decimal.Decimal  `json:"total"`
	PlacedAt time.Time        `json:"placedAt"`
}

type PaymentProcessor interface {
	// Process blocks until the payment settles or ctx is done.
	Process(ctx context.Context, order *Order) error
}

type OrderNumberGenerator interface {
	Next() string
}

type NotificationSender interface {
	Send(recipient, subject, body string) error
}
