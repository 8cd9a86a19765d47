package transport

import (
	"context"
	"net/http"
	"sync"

	"github.com/pkg/errors"

	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/service"
)

type WizardFactory func(session authmodel.Session) (service.Wizard, error)

// checkoutSession holds the single checkout of the process. Starting a new
// one replaces it.
type checkoutSession struct {
	mu        sync.Mutex
	newWizard WizardFactory
	current   service.Wizard
}

func (s *checkoutSession) start(session authmodel.Session) (service.Wizard, error) {
	wizard, err := s.newWizard(session)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = wizard
	s.mu.Unlock()
	return wizard, nil
}

func (s *checkoutSession) get() service.Wizard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

type checkoutOptionsRequest struct {
	SameAsShipping  *bool `json:"sameAsShipping"`
	SavePaymentInfo *bool `json:"savePaymentInfo"`
}

type placeOrderResponse struct {
	Message  string       `json:"message"`
	Order    *model.Order `json:"order"`
	Redirect string       `json:"redirect"`
}

func (h *Handler) startCheckout(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	if h.requireAuth && !session.IsAuthenticated() {
		http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		return
	}

	wizard, err := h.checkout.start(session)
	if errors.Cause(err) == model.ErrCartEmpty {
		http.Redirect(w, r, RouteCart, http.StatusSeeOther)
		return
	}
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, wizard.Snapshot())
}

func (h *Handler) getCheckout(w http.ResponseWriter, _ *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, wizard.Snapshot())
}

func (h *Handler) setCheckoutFields(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}

	var fields map[model.Field]string
	if err := decodeJSON(r, &fields); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	form := model.NewForm()
	for field := range fields {
		if _, known := form.Get(field); !known {
			h.checkoutError(w, model.ErrUnknownField)
			return
		}
	}
	for field, value := range fields {
		if err := wizard.SetField(field, value); err != nil {
			h.checkoutError(w, err)
			return
		}
	}
	h.writeJSON(w, http.StatusOK, wizard.Snapshot())
}

func (h *Handler) setCheckoutOptions(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}

	var req checkoutOptionsRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Requête invalide")
		return
	}

	if req.SameAsShipping != nil {
		if err := wizard.SetSameAsShipping(*req.SameAsShipping); err != nil {
			h.checkoutError(w, err)
			return
		}
	}
	if req.SavePaymentInfo != nil {
		if err := wizard.SetSavePaymentInfo(*req.SavePaymentInfo); err != nil {
			h.checkoutError(w, err)
			return
		}
	}
	h.writeJSON(w, http.StatusOK, wizard.Snapshot())
}

func (h *Handler) nextCheckoutStep(w http.ResponseWriter, _ *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}

	if _, err := wizard.Next(); err != nil {
		h.checkoutStateError(w, wizard, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wizard.Snapshot())
}

func (h *Handler) previousCheckoutStep(w http.ResponseWriter, _ *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}

	if err := wizard.Back(); err != nil {
		h.checkoutError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, wizard.Snapshot())
}

// placeOrder runs under the request context: a client that goes away aborts
// the placement and keeps its cart.
func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.currentWizard(w)
	if !ok {
		return
	}

	order, err := wizard.PlaceOrder(r.Context())
	if err != nil {
		h.checkoutStateError(w, wizard, err)
		return
	}

	h.logger.WithField("orderNumber", order.Number).Info("order placed")
	w.Header().Set("Location", RouteCheckoutSuccess)
	h.writeJSON(w, http.StatusCreated, placeOrderResponse{
		Message:  "Merci pour votre commande !",
		Order:    order,
		Redirect: RouteCheckoutSuccess,
	})
}

func (h *Handler) currentWizard(w http.ResponseWriter) (service.Wizard, bool) {
	wizard := h.checkout.get()
	if wizard == nil {
		h.writeError(w, http.StatusNotFound, "Aucune commande en cours")
		return nil, false
	}
	return wizard, true
}

// checkoutStateError answers validation failures with the snapshot so the
// client can render the field errors.
func (h *Handler) checkoutStateError(w http.ResponseWriter, wizard service.Wizard, err error) {
	if errors.Cause(err) == model.ErrValidationFailed {
		h.writeJSON(w, http.StatusUnprocessableEntity, wizard.Snapshot())
		return
	}
	h.checkoutError(w, err)
}

func (h *Handler) checkoutError(w http.ResponseWriter, err error) {
	switch cause := errors.Cause(err); cause {
	case model.ErrUnknownField:
		h.writeError(w, http.StatusBadRequest, cause.Error())
	case model.ErrInvalidTransition, model.ErrAlreadyProcessing, model.ErrCheckoutClosed:
		h.writeError(w, http.StatusConflict, cause.Error())
	case context.Canceled, context.DeadlineExceeded:
		h.logger.WithError(err).Info("checkout request cancelled")
		h.writeError(w, http.StatusServiceUnavailable, "Commande annulée")
	default:
		h.internalError(w, err)
	}
}
