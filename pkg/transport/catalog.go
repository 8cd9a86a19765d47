package transport

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
)

type productRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (h *Handler) listProducts(w http.ResponseWriter, _ *http.Request) {
	products, err := h.products.ListProducts()
	if err != nil {
		h.internalError(w, err)
		return
	}
	if products == nil {
		products = []model.Product{}
	}
	h.writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.products.GetProduct(productID(r))
	if err != nil {
		h.productError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	product, err := h.products.CreateProduct(req.Name, req.Price)
	if err != nil {
		h.productError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	product, err := h.products.UpdateProduct(productID(r), req.Name, req.Price)
	if err != nil {
		h.productError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.DeleteProduct(productID(r)); err != nil {
		h.productError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, messageResponse{Message: "Produit supprimé avec succès"})
}

func (h *Handler) productError(w http.ResponseWriter, err error) {
	switch errors.Cause(err) {
	case model.ErrProductNotFound:
		h.writeError(w, http.StatusNotFound, "Produit introuvable")
	case model.ErrNameRequired, model.ErrNegativePrice:
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, err)
	}
}

// Route patterns only admit digits, so the parse cannot fail below int64 overflow.
func productID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}
