package model

type ItemAddedToCart struct {
	ItemID   string
	Quantity int
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type ItemRemovedFromCart struct {
	ItemID string
}

func (e ItemRemovedFromCart) Type() string { return "ItemRemovedFromCart" }

type CartItemQuantityChanged struct {
	ItemID      string
	OldQuantity int
	NewQuantity int
}

func (e CartItemQuantityChanged) Type() string { return "CartItemQuantityChanged" }

type CartCleared struct{}

func (e CartCleared) Type() string { return "CartCleared" }
