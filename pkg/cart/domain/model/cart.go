package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// StorageKey is the key-value entry that holds the serialized cart.
const StorageKey = "cart"

var ErrStorageKeyNotFound = errors.New("storage key not found")

type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

type Item struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Storage is a local key-value store. Load returns ErrStorageKeyNotFound
// when nothing has been saved under key yet.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}

// FormatAmount rounds to cents for display only.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
