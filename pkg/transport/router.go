package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	authservice "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/service"
	cartservice "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/service"
	catalogservice "github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/service"
)

// Routes the front end navigates to.
const (
	RouteCart            = "/panier"
	RouteLogin           = "/login"
	RouteCheckoutSuccess = "/checkout/success"
)

type Handler struct {
	products    catalogservice.ProductService
	cart        cartservice.CartStore
	auth        authservice.AuthService
	checkout    *checkoutSession
	requireAuth bool
	logger      log.FieldLogger
}

type Options struct {
	Products    catalogservice.ProductService
	Cart        cartservice.CartStore
	Auth        authservice.AuthService
	NewWizard   WizardFactory
	RequireAuth bool
	Logger      log.FieldLogger
}

func Router(opts Options) http.Handler {
	h := &Handler{
		products:    opts.Products,
		cart:        opts.Cart,
		auth:        opts.Auth,
		checkout:    &checkoutSession{newWizard: opts.NewWizard},
		requireAuth: opts.RequireAuth,
		logger:      opts.Logger,
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.login).Methods(http.MethodPost)

	// Login and register accept requests carrying an expired token.
	s := api.NewRoute().Subrouter()
	s.Use(h.sessionMiddleware)

	s.HandleFunc("/products", h.listProducts).Methods(http.MethodGet)
	s.HandleFunc("/products", h.createProduct).Methods(http.MethodPost)
	s.HandleFunc("/products/{id:[0-9]+}", h.getProduct).Methods(http.MethodGet)
	s.HandleFunc("/products/{id:[0-9]+}", h.updateProduct).Methods(http.MethodPut)
	s.HandleFunc("/products/{id:[0-9]+}", h.deleteProduct).Methods(http.MethodDelete)

	s.HandleFunc("/cart", h.getCart).Methods(http.MethodGet)
	s.HandleFunc("/cart", h.clearCart).Methods(http.MethodDelete)
	s.HandleFunc("/cart/items", h.addCartItem).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{id}", h.setCartItemQuantity).Methods(http.MethodPut)
	s.HandleFunc("/cart/items/{id}", h.removeCartItem).Methods(http.MethodDelete)

	s.HandleFunc("/checkout", h.startCheckout).Methods(http.MethodPost)
	s.HandleFunc("/checkout", h.getCheckout).Methods(http.MethodGet)
	s.HandleFunc("/checkout/fields", h.setCheckoutFields).Methods(http.MethodPut)
	s.HandleFunc("/checkout/options", h.setCheckoutOptions).Methods(http.MethodPut)
	s.HandleFunc("/checkout/next", h.nextCheckoutStep).Methods(http.MethodPost)
	s.HandleFunc("/checkout/back", h.previousCheckoutStep).Methods(http.MethodPost)
	s.HandleFunc("/checkout/place", h.placeOrder).Methods(http.MethodPost)

	return logMiddleware(r)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.WithError(err).Error("write response body")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, messageResponse{Message: message})
}

func (h *Handler) internalError(w http.ResponseWriter, err error) {
	h.logger.WithError(err).Error("request failed")
	h.writeError(w, http.StatusInternalServerError, "Erreur interne du serveur")
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
