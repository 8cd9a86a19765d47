package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CheckoutStarted struct {
	ItemCount     int
	Authenticated bool
}

func (e CheckoutStarted) Type() string { return "CheckoutStarted" }

type CheckoutStepChanged struct {
	From Step
	To   Step
}

func (e CheckoutStepChanged) Type() string { return "CheckoutStepChanged" }

type OrderPlaced struct {
	OrderID     uuid.UUID
	OrderNumber string
	Email       string
	FirstName   string
	Total       decimal.Decimal
}

func (e OrderPlaced) Type() string { return "OrderPlaced" }

type OrderPlacementAborted struct {
	OrderID uuid.UUID
	Reason  string
}

func (e OrderPlacementAborted) Type() string { return "OrderPlacementAborted" }
