package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name is required")
	ErrNegativePrice   = errors.New("product price cannot be negative")
)

type Product struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ProductRepository interface {
	List() ([]Product, error)
	Find(id int64) (*Product, error)
	Create(product *Product) (int64, error)
	Update(product *Product) error
	Delete(id int64) error
}
