package tests

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

func setup(t *testing.T) (service.CartStore, *mockStorage, *mockEventDispatcher) {
	storage := &mockStorage{data: make(map[string][]byte)}
	dispatcher := &mockEventDispatcher{}
	logger, _ := test.NewNullLogger()
	return service.NewCartStore(storage, dispatcher, logger), storage, dispatcher
}

func product(id, price string) model.Product {
	return model.Product{ID: id, Name: "Product " + id, Price: decimal.RequireFromString(price)}
}

func TestAddItem(t *testing.T) {
	cart, storage, dispatcher := setup(t)

	t.Run("New item is appended with quantity 1", func(t *testing.T) {
		require.NoError(t, cart.AddItem(product("1", "10.00")))

		items := cart.Items()
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, 1, cart.ItemCount())

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.ItemAddedToCart)
		assert.True(t, ok)
	})

	t.Run("Existing item is incremented, not duplicated", func(t *testing.T) {
		require.NoError(t, cart.AddItem(product("2", "3.50")))
		require.NoError(t, cart.AddItem(product("1", "10.00")))

		items := cart.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID)
		assert.Equal(t, 2, items[0].Quantity)
		assert.Equal(t, "2", items[1].ID)
		assert.Equal(t, 3, cart.ItemCount())
	})

	t.Run("Every mutation is persisted", func(t *testing.T) {
		var saved []model.Item
		require.NoError(t, json.Unmarshal(storage.data[model.StorageKey], &saved))
		items := cart.Items()
		require.Len(t, saved, len(items))
		for i := range items {
			assert.Equal(t, items[i].ID, saved[i].ID)
			assert.Equal(t, items[i].Quantity, saved[i].Quantity)
			assert.True(t, items[i].UnitPrice.Equal(saved[i].UnitPrice))
		}
	})
}

func TestItemCountMatchesQuantities(t *testing.T) {
	cart, _, _ := setup(t)
	ids := []string{"a", "b", "a", "c", "a", "b"}
	for _, id := range ids {
		require.NoError(t, cart.AddItem(product(id, "1")))
	}

	sum := 0
	for _, item := range cart.Items() {
		sum += item.Quantity
	}
	assert.Equal(t, len(ids), cart.ItemCount())
	assert.Equal(t, sum, cart.ItemCount())
	assert.Len(t, cart.Items(), 3)
}

func TestSetQuantity(t *testing.T) {
	cart, _, dispatcher := setup(t)
	require.NoError(t, cart.AddItem(product("1", "2.00")))
	require.NoError(t, cart.SetQuantity("1", 4))
	assert.Equal(t, 4, cart.Items()[0].Quantity)

	for _, qty := range []int{0, -3} {
		dispatcher.Reset()
		require.NoError(t, cart.SetQuantity("1", qty))
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, 4, cart.Items()[0].Quantity)
		assert.Empty(t, dispatcher.events)
	}

	t.Run("Unknown id is ignored", func(t *testing.T) {
		require.NoError(t, cart.SetQuantity("missing", 2))
		assert.Equal(t, 4, cart.ItemCount())
	})
}

func TestRemoveItem(t *testing.T) {
	cart, _, dispatcher := setup(t)
	require.NoError(t, cart.AddItem(product("1", "2.00")))
	require.NoError(t, cart.AddItem(product("2", "2.00")))

	require.NoError(t, cart.RemoveItem("1"))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "2", cart.Items()[0].ID)
	assert.Equal(t, 1, cart.ItemCount())

	dispatcher.Reset()
	require.NoError(t, cart.RemoveItem("1"))
	assert.Len(t, cart.Items(), 1)
	assert.Empty(t, dispatcher.events)
}

func TestClear(t *testing.T) {
	cart, storage, _ := setup(t)
	require.NoError(t, cart.AddItem(product("1", "2.00")))

	require.NoError(t, cart.Clear())
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, "[]", string(storage.data[model.StorageKey]))
}

func TestTotal(t *testing.T) {
	t.Run("Independent of insertion order", func(t *testing.T) {
		first, _, _ := setup(t)
		second, _, _ := setup(t)
		for _, id := range []string{"a", "b", "a", "c"} {
			require.NoError(t, first.AddItem(product(id, priceOf(id))))
		}
		for _, id := range []string{"c", "a", "a", "b"} {
			require.NoError(t, second.AddItem(product(id, priceOf(id))))
		}

		assert.True(t, first.Total().Equal(second.Total()))
		assert.Equal(t, "32.99", model.FormatAmount(first.Total()))
	})

	t.Run("Internal arithmetic is not rounded", func(t *testing.T) {
		cart, _, _ := setup(t)
		require.NoError(t, cart.AddItem(product("x", "0.333")))
		require.NoError(t, cart.SetQuantity("x", 3))

		assert.True(t, cart.Total().Equal(decimal.RequireFromString("0.999")))
		assert.Equal(t, "1.00", model.FormatAmount(cart.Total()))
	})
}

func priceOf(id string) string {
	return map[string]string{"a": "10.00", "b": "7.49", "c": "5.50"}[id]
}

func TestLoadOnConstruction(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("Restores saved items", func(t *testing.T) {
		storage := &mockStorage{data: map[string][]byte{
			model.StorageKey: []byte(`[{"id":"1","name":"Mug","price":"4.50","quantity":2},{"id":"2","name":"Pen","price":1.25,"quantity":1}]`),
		}}
		cart := service.NewCartStore(storage, &mockEventDispatcher{}, logger)

		assert.Equal(t, 3, cart.ItemCount())
		assert.Equal(t, "10.25", model.FormatAmount(cart.Total()))
	})

	t.Run("Missing key yields empty cart", func(t *testing.T) {
		hook.Reset()
		cart := service.NewCartStore(&mockStorage{data: map[string][]byte{}}, &mockEventDispatcher{}, logger)
		assert.True(t, cart.IsEmpty())
		assert.Empty(t, hook.Entries)
	})

	t.Run("Corrupt value yields empty cart", func(t *testing.T) {
		hook.Reset()
		storage := &mockStorage{data: map[string][]byte{model.StorageKey: []byte("{not json")}}
		cart := service.NewCartStore(storage, &mockEventDispatcher{}, logger)
		assert.True(t, cart.IsEmpty())
		assert.NotEmpty(t, hook.Entries)
	})

	t.Run("Read failure yields empty cart", func(t *testing.T) {
		storage := &mockStorage{loadErr: errors.New("disk on fire")}
		cart := service.NewCartStore(storage, &mockEventDispatcher{}, logger)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("Invalid saved items are dropped", func(t *testing.T) {
		storage := &mockStorage{data: map[string][]byte{
			model.StorageKey: []byte(`[{"id":"1","name":"A","price":"1","quantity":0},{"id":"2","name":"B","price":"1","quantity":2},{"id":"2","name":"B","price":"1","quantity":5}]`),
		}}
		cart := service.NewCartStore(storage, &mockEventDispatcher{}, logger)
		require.Len(t, cart.Items(), 1)
		assert.Equal(t, 2, cart.ItemCount())
	})
}

func TestSaveFailureKeepsMutation(t *testing.T) {
	cart, storage, dispatcher := setup(t)
	storage.saveErr = errors.New("quota exceeded")

	err := cart.AddItem(product("1", "1.00"))
	assert.ErrorIs(t, err, storage.saveErr)
	assert.Equal(t, 1, cart.ItemCount())
	assert.Empty(t, dispatcher.events)
}

var _ model.Storage = &mockStorage{}

type mockStorage struct {
	data    map[string][]byte
	loadErr error
	saveErr error
}

func (m *mockStorage) Load(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	value, ok := m.data[key]
	if !ok {
		return nil, model.ErrStorageKeyNotFound
	}
	return value, nil
}

func (m *mockStorage) Save(key string, value []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
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
