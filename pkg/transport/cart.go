package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	catalogmodel "github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
)

type cartResponse struct {
	Items     []cartmodel.Item `json:"items"`
	ItemCount int              `json:"itemCount"`
	Total     string           `json:"total"`
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, _ *http.Request) {
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	product, err := h.products.GetProduct(req.ProductID)
	if err != nil {
		if errors.Cause(err) == catalogmodel.ErrProductNotFound {
			h.writeError(w, http.StatusNotFound, "Produit introuvable")
			return
		}
		h.internalError(w, err)
		return
	}

	err = h.cart.AddItem(cartmodel.Product{
		ID:    strconv.FormatInt(product.ID, 10),
		Name:  product.Name,
		Price: product.Price,
	})
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) setCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if err := h.cart.SetQuantity(mux.Vars(r)["id"], req.Quantity); err != nil {
		h.internalError(w, err)
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.RemoveItem(mux.Vars(r)["id"]); err != nil {
		h.internalError(w, err)
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, _ *http.Request) {
	if err := h.cart.Clear(); err != nil {
		h.internalError(w, err)
		return
	}
	h.writeCart(w, http.StatusOK)
}

func (h *Handler) writeCart(w http.ResponseWriter, status int) {
	h.writeJSON(w, status, cartResponse{
		Items:     h.cart.Items(),
		ItemCount: h.cart.ItemCount(),
		Total:     cartmodel.FormatAmount(h.cart.Total()),
	})
}
