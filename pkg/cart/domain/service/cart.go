package service

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/Mouss-42/ReactSituPro-main/pkg/cart/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type CartStore interface {
	AddItem(product model.Product) error
	RemoveItem(id string) error
	SetQuantity(id string, quantity int) error
	Clear() error

	Items() []model.Item
	ItemCount() int
	Total() decimal.Decimal
	IsEmpty() bool
}

// NewCartStore restores the cart saved under model.StorageKey. A missing or
// unreadable entry yields an empty cart.
func NewCartStore(storage model.Storage, dispatcher domain.EventDispatcher, logger log.FieldLogger) CartStore {
	s := &cartStore{storage: storage, dispatcher: dispatcher, logger: logger}
	s.items = s.load()
	s.recalculateCount()
	return s
}

type cartStore struct {
	mu         sync.Mutex
	storage    model.Storage
	dispatcher domain.EventDispatcher
	logger     log.FieldLogger

	items     []model.Item
	itemCount int
}

func (s *cartStore) AddItem(product model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	quantity := 1
	if i := s.indexOf(product.ID); i >= 0 {
		s.items[i].Quantity++
		quantity = s.items[i].Quantity
	} else {
		s.items = append(s.items, model.Item{
			ID:        product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  1,
		})
	}

	if err := s.commit(); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{ItemID: product.ID, Quantity: quantity})
	return nil
}

func (s *cartStore) RemoveItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)

	if err := s.commit(); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ItemRemovedFromCart{ItemID: id})
	return nil
}

// SetQuantity ignores quantities below 1 instead of removing the item.
func (s *cartStore) SetQuantity(id string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	old := s.items[i].Quantity
	s.items[i].Quantity = quantity

	if err := s.commit(); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.CartItemQuantityChanged{ItemID: id, OldQuantity: old, NewQuantity: quantity})
	return nil
}

func (s *cartStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.commit(); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.CartCleared{})
	return nil
}

func (s *cartStore) Items() []model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]model.Item, len(s.items))
	copy(items, s.items)
	return items
}

func (s *cartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount
}

func (s *cartStore) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (s *cartStore) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

func (s *cartStore) indexOf(id string) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (s *cartStore) recalculateCount() {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	s.itemCount = count
}

// commit recounts and writes the whole item list. The in-memory state is kept
// even when the write fails.
func (s *cartStore) commit() error {
	s.recalculateCount()

	items := s.items
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.storage.Save(model.StorageKey, data)
}

func (s *cartStore) load() []model.Item {
	data, err := s.storage.Load(model.StorageKey)
	if err != nil {
		if !errors.Is(err, model.ErrStorageKeyNotFound) {
			s.logger.WithError(err).Warn("failed to read saved cart, starting empty")
		}
		return nil
	}

	var saved []model.Item
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.WithError(err).Warn("saved cart is corrupt, starting empty")
		return nil
	}

	items := make([]model.Item, 0, len(saved))
	seen := make(map[string]bool, len(saved))
	for _, item := range saved {
		if item.Quantity < 1 || item.UnitPrice.IsNegative() || seen[item.ID] {
			s.logger.WithField("item", item.ID).Warn("dropping invalid saved cart item")
			continue
		}
		seen[item.ID] = true
		items = append(items, item)
	}
	return items
}
