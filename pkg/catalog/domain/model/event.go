package model

import "github.com/shopspring/decimal"

type ProductCreated struct {
	ProductID int64
	Name      string
}

func (e ProductCreated) Type() string { return "ProductCreated" }

type ProductUpdated struct {
	ProductID int64
	OldPrice  decimal.Decimal
	NewPrice  decimal.Decimal
}

func (e ProductUpdated) Type() string { return "ProductUpdated" }

type ProductDeleted struct {
	ProductID int64
}

func (e ProductDeleted) Type() string { return "ProductDeleted" }
