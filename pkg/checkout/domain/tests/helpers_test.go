package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	cartmodel "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	cartservice "github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/checkout/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type fixture struct {
	cart       cartservice.CartStore
	processor  *gatedProcessor
	dispatcher *mockEventDispatcher
	deps       service.Dependencies
}

func newFixture(t *testing.T, products ...cartmodel.Product) *fixture {
	logger, _ := test.NewNullLogger()
	dispatcher := &mockEventDispatcher{}
	cart := cartservice.NewCartStore(&mockStorage{data: map[string][]byte{}}, dispatcher, logger)
	for _, p := range products {
		require.NoError(t, cart.AddItem(p))
	}
	dispatcher.Reset()

	processor := newGatedProcessor()
	return &fixture{
		cart:       cart,
		processor:  processor,
		dispatcher: dispatcher,
		deps: service.Dependencies{
			Cart:         cart,
			Processor:    processor,
			OrderNumbers: service.RandomOrderNumbers{},
			Dispatcher:   dispatcher,
			Logger:       logger,
			Pricing:      model.DefaultPricing(),
		},
	}
}

func (f *fixture) start(t *testing.T) service.Wizard {
	w, err := service.NewWizard(f.deps, authmodel.AnonymousSession())
	require.NoError(t, err)
	return w
}

var mug = cartmodel.Product{ID: "1", Name: "Mug", Price: decimal.RequireFromString("12.50")}

func fillShipping(t *testing.T, w service.Wizard) {
	values := map[model.Field]string{
		model.FieldFirstName:  "Jane",
		model.FieldLastName:   "Doe",
		model.FieldEmail:      "jane@example.com",
		model.FieldPhone:      "0600000000",
		model.FieldAddress:    "1 rue de Rivoli",
		model.FieldCity:       "Paris",
		model.FieldPostalCode: "75001",
	}
	for field, value := range values {
		require.NoError(t, w.SetField(field, value))
	}
}

func fillPayment(t *testing.T, w service.Wizard) {
	require.NoError(t, w.SetField(model.FieldCardName, "Jane Doe"))
	require.NoError(t, w.SetField(model.FieldCardNumber, "4111111111111111"))
	require.NoError(t, w.SetField(model.FieldCardExpiry, "1229"))
	require.NoError(t, w.SetField(model.FieldCardCVC, "123"))
}

// advanceToReview fills every step and walks the wizard to Review.
func advanceToReview(t *testing.T, w service.Wizard) {
	fillShipping(t, w)
	_, err := w.Next()
	require.NoError(t, err)
	_, err = w.Next()
	require.NoError(t, err)
	fillPayment(t, w)
	_, err = w.Next()
	require.NoError(t, err)
	require.Equal(t, model.Review, w.Step())
}

// gatedProcessor blocks until released or until ctx is done.
type gatedProcessor struct {
	release chan struct{}
	calls   int
}

func newGatedProcessor() *gatedProcessor {
	return &gatedProcessor{release: make(chan struct{})}
}

func (p *gatedProcessor) Open() *gatedProcessor {
	close(p.release)
	return p
}

func (p *gatedProcessor) Process(ctx context.Context, _ *model.Order) error {
	p.calls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.release:
		return nil
	}
}

var _ cartmodel.Storage = &mockStorage{}

type mockStorage struct {
	data map[string][]byte
}

func (m *mockStorage) Load(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, cartmodel.ErrStorageKeyNotFound
	}
	return value, nil
}

func (m *mockStorage) Save(key string, value []byte) error {
	m.data[key] = value
	return nil
}

var _ domain.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []domain.Event
}

func (m *mockEventDispatcher) Dispatch(event domain.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

func (m *mockEventDispatcher) Types() []string {
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type())
	}
	return types
}
