package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	cartservice "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type Wizard interface {
	Step() model.Step
	Errors() model.ValidationErrors
	IsProcessing() bool
	Snapshot() model.Snapshot

	SetField(field model.Field, value string) error
	SetSameAsShipping(same bool) error
	SetSavePaymentInfo(save bool) error
	Next() (model.ValidationErrors, error)
	Back() error
	PlaceOrder(ctx context.Context) (*model.Order, error)
}

type Dependencies struct {
	Cart         cartservice.CartStore
	Processor    model.PaymentProcessor
	OrderNumbers model.OrderNumberGenerator
	Dispatcher   domain.EventDispatcher
	Logger       log.FieldLogger
	Pricing      model.Pricing
}

// NewWizard starts a checkout on the Shipping step. The cart must not be
// empty; it is not checked again once the checkout is running.
func NewWizard(deps Dependencies, session authmodel.Session) (Wizard, error) {
	if deps.Cart.IsEmpty() {
		return nil, model.ErrCartEmpty
	}

	form := model.NewForm()
	if session.IsAuthenticated() {
		form.Shipping.FirstName = session.User.FirstName
		form.Shipping.LastName = session.User.LastName
		form.Shipping.Email = session.User.Email
		form.Shipping.Phone = session.User.Phone
	}

	w := &wizard{
		deps:   deps,
		step:   model.Shipping,
		form:   form,
		errors: model.ValidationErrors{},
	}

	_ = deps.Dispatcher.Dispatch(model.CheckoutStarted{
		ItemCount:     deps.Cart.ItemCount(),
		Authenticated: session.IsAuthenticated(),
	})
	return w, nil
}

type wizard struct {
	mu   sync.Mutex
	deps Dependencies

	step       model.Step
	form       model.Form
	errors     model.ValidationErrors
	processing bool
	order      *model.Order
}

func (w *wizard) Step() model.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *wizard) Errors() model.ValidationErrors {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copyErrors()
}

func (w *wizard) IsProcessing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.processing
}

func (w *wizard) Snapshot() model.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snapshot := model.Snapshot{
		Step:         w.step,
		StepName:     w.step.String(),
		Form:         w.form,
		Errors:       w.copyErrors(),
		IsProcessing: w.processing,
		MaskedCard:   w.form.Payment.MaskedCardNumber(),
		Order:        w.order,
	}
	if w.order != nil {
		snapshot.Items = w.order.Items
		snapshot.Totals = w.order.Totals
		for _, item := range w.order.Items {
			snapshot.ItemCount += item.Quantity
		}
		return snapshot
	}

	snapshot.Items = w.deps.Cart.Items()
	snapshot.ItemCount = w.deps.Cart.ItemCount()
	snapshot.Totals = ComputeTotals(w.deps.Cart.Total(), w.deps.Pricing)
	return snapshot
}

// SetField stores a user edit and clears that field's error. Card number and
// expiry are normalised while typing.
func (w *wizard) SetField(field model.Field, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return err
	}

	switch field {
	case model.FieldCardNumber:
		value = FormatCardNumber(value)
	case model.FieldCardExpiry:
		value = FormatExpiry(value)
	}

	if !w.form.Set(field, value) {
		return model.ErrUnknownField
	}
	delete(w.errors, field)
	return nil
}

func (w *wizard) SetSameAsShipping(same bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return err
	}

	w.form.SameAsShipping = same
	if same {
		w.form.CopyShippingToBilling()
	}
	return nil
}

func (w *wizard) SetSavePaymentInfo(save bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkEditable(); err != nil {
		return err
	}
	w.form.SavePaymentInfo = save
	return nil
}

func (w *wizard) Next() (model.ValidationErrors, error) {
	return w.move(model.ActionNext)
}

func (w *wizard) Back() error {
	_, err := w.move(model.ActionBack)
	return err
}

func (w *wizard) move(action model.Action) (model.ValidationErrors, error) {
	w.mu.Lock()

	if w.processing {
		w.mu.Unlock()
		return nil, model.ErrAlreadyProcessing
	}

	from := w.step
	next, errs, err := Transition(from, w.form, action)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if action == model.ActionNext {
		w.errors = model.ValidationErrors{}
		for field, message := range errs {
			w.errors[field] = message
		}
	}
	if len(errs) > 0 {
		w.mu.Unlock()
		return errs, model.ErrValidationFailed
	}
	w.step = next
	w.mu.Unlock()

	if next != from {
		_ = w.deps.Dispatcher.Dispatch(model.CheckoutStepChanged{From: from, To: next})
	}
	return nil, nil
}

// PlaceOrder validates the form, waits for the payment processor and then
// empties the cart. Cancelling ctx while processing leaves the cart and the
// Review step untouched.
func (w *wizard) PlaceOrder(ctx context.Context) (*model.Order, error) {
	w.mu.Lock()
	if w.processing {
		w.mu.Unlock()
		return nil, model.ErrAlreadyProcessing
	}

	next, errs, err := Transition(w.step, w.form, model.ActionPlace)
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if len(errs) > 0 {
		w.errors = errs
		w.mu.Unlock()
		return nil, model.ErrValidationFailed
	}

	items := w.deps.Cart.Items()
	totals := ComputeTotals(w.deps.Cart.Total(), w.deps.Pricing)
	order := &model.Order{
		ID:     uuid.New(),
		Items:  items,
		Totals: totals,
		Total:  totals.GrandTotal,
	}
	shipping := w.form.Shipping
	w.processing = true
	w.mu.Unlock()

	err = w.deps.Processor.Process(ctx, order)

	w.mu.Lock()
	w.processing = false
	if err != nil {
		w.mu.Unlock()
		w.deps.Logger.WithError(err).WithField("order", order.ID).Warn("order placement aborted")
		_ = w.deps.Dispatcher.Dispatch(model.OrderPlacementAborted{OrderID: order.ID, Reason: err.Error()})
		return nil, err
	}

	if err := w.deps.Cart.Clear(); err != nil {
		w.deps.Logger.WithError(err).Warn("failed to persist the cleared cart")
	}
	order.Number = w.deps.OrderNumbers.Next()
	order.PlacedAt = time.Now().UTC()
	w.order = order
	w.step = next
	w.mu.Unlock()

	_ = w.deps.Dispatcher.Dispatch(model.CheckoutStepChanged{From: model.Review, To: next})
	_ = w.deps.Dispatcher.Dispatch(model.OrderPlaced{
		OrderID:     order.ID,
		OrderNumber: order.Number,
		Email:       shipping.Email,
		FirstName:   shipping.FirstName,
		Total:       order.Total,
	})
	return order, nil
}

func (w *wizard) checkEditable() error {
	if w.step.IsTerminal() {
		return model.ErrCheckoutClosed
	}
	if w.processing {
		return model.ErrAlreadyProcessing
	}
	return nil
}

func (w *wizard) copyErrors() model.ValidationErrors {
	errs := make(model.ValidationErrors, len(w.errors))
	for field, message := range w.errors {
		errs[field] = message
	}
	return errs
}
