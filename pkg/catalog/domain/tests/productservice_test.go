package tests

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/service"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

func setup(t *testing.T) (service.ProductService, *mockProductRepository, *mockEventDispatcher) {
	repo := &mockProductRepository{store: make(map[int64]*model.Product)}
	dispatcher := &mockEventDispatcher{}
	return service.NewProductService(repo, dispatcher), repo, dispatcher
}

func TestCreateProduct(t *testing.T) {
	productService, repo, dispatcher := setup(t)

	t.Run("Success", func(t *testing.T) {
		product, err := productService.CreateProduct("  Mug ", decimal.RequireFromString("4.50"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), product.ID)
		assert.Equal(t, "Mug", product.Name)
		assert.Contains(t, repo.store, int64(1))

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.ProductCreated)
		assert.True(t, ok)
	})

	t.Run("Fail on empty name", func(t *testing.T) {
		_, err := productService.CreateProduct(" ", decimal.NewFromInt(1))
		assert.ErrorIs(t, err, model.ErrNameRequired)
	})

	t.Run("Fail on negative price", func(t *testing.T) {
		_, err := productService.CreateProduct("Pen", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, model.ErrNegativePrice)
	})
}

func TestUpdateProduct(t *testing.T) {
	productService, repo, dispatcher := setup(t)
	created, err := productService.CreateProduct("Mug", decimal.RequireFromString("4.50"))
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		dispatcher.Reset()
		updated, err := productService.UpdateProduct(created.ID, "Big mug", decimal.RequireFromString("6"))
		require.NoError(t, err)
		assert.Equal(t, "Big mug", repo.store[created.ID].Name)
		assert.True(t, updated.Price.Equal(decimal.NewFromInt(6)))

		require.Len(t, dispatcher.events, 1)
		event, ok := dispatcher.events[0].(model.ProductUpdated)
		require.True(t, ok)
		assert.True(t, event.OldPrice.Equal(decimal.RequireFromString("4.5")))
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		_, err := productService.UpdateProduct(99, "X", decimal.Zero)
		assert.ErrorIs(t, err, model.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	productService, repo, _ := setup(t)
	created, err := productService.CreateProduct("Mug", decimal.NewFromInt(1))
	require.NoError(t, err)

	require.NoError(t, productService.DeleteProduct(created.ID))
	assert.NotContains(t, repo.store, created.ID)
	assert.ErrorIs(t, productService.DeleteProduct(created.ID), model.ErrProductNotFound)

	products, err := productService.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

var _ model.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	store  map[int64]*model.Product
	nextID int64
}

func (m *mockProductRepository) List() ([]model.Product, error) {
	products := make([]model.Product, 0, len(m.store))
	for _, p := range m.store {
		products = append(products, *p)
	}
	return products, nil
}

func (m *mockProductRepository) Find(id int64) (*model.Product, error) {
	if p, ok := m.store[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) Create(product *model.Product) (int64, error) {
	m.nextID++
	stored := *product
	stored.ID = m.nextID
	m.store[m.nextID] = &stored
	return m.nextID, nil
}

func (m *mockProductRepository) Update(product *model.Product) error {
	if _, ok := m.store[product.ID]; !ok {
		return model.ErrProductNotFound
	}
	stored := *product
	m.store[product.ID] = &stored
	return nil
}

func (m *mockProductRepository) Delete(id int64) error {
	if _, ok := m.store[id]; !ok {
		return model.ErrProductNotFound
	}
	delete(m.store, id)
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
