package model

import cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"

// Snapshot is everything a view needs to render the checkout.
type Snapshot struct {
	Step         Step             `json:"step"`
	StepName     string           `json:"stepName"`
	Form         Form             `json:"form"`
	Errors       ValidationErrors `json:"errors"`
	IsProcessing bool             `json:"isProcessing"`
	Items        []cartmodel.Item `json:"items"`
	ItemCount    int              `json:"itemCount"`
	Totals       Totals           `json:"totals"`
	MaskedCard   string           `json:"maskedCard"`
	Order        *Order           `json:"order,omitempty"`
}
