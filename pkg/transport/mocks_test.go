package transport_test

import (
	"sync"

	"github.com/google/uuid"

	authmodel "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/model"
	authservice "github.com/Mouss-42/ReactSituPro-main/pkg/auth/domain/service"
	catalogmodel "github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
)

const validToken = "valid-token"

var _ authservice.AuthService = &mockAuthService{}

type mockAuthService struct{}

func (m *mockAuthService) Register(username, plainTextPassword string, _ authmodel.Profile) (*authmodel.User, error) {
	if username == "" || plainTextPassword == "" {
		return nil, authservice.ErrMissingCredentials
	}
	if username == "taken" {
		return nil, authmodel.ErrUsernameTaken
	}
	return &authmodel.User{ID: uuid.New(), Username: username}, nil
}

func (m *mockAuthService) Login(username, plainTextPassword string) (string, *authmodel.User, error) {
	if plainTextPassword != "secret" {
		return "", nil, authmodel.ErrInvalidCredentials
	}
	return validToken, &authmodel.User{ID: uuid.New(), Username: username}, nil
}

func (m *mockAuthService) Session(token string) (authmodel.Session, error) {
	switch token {
	case "":
		return authmodel.AnonymousSession(), nil
	case validToken:
		return authmodel.Session{Authenticated: true, User: &authmodel.Profile{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
		}}, nil
	default:
		return authmodel.AnonymousSession(), authmodel.ErrInvalidToken
	}
}

var _ catalogmodel.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]catalogmodel.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]catalogmodel.Product)}
}

func (m *mockProductRepository) List() ([]catalogmodel.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	products := make([]catalogmodel.Product, 0, len(m.products))
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *mockProductRepository) Find(id int64) (*catalogmodel.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, catalogmodel.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductRepository) Create(product *catalogmodel.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	product.ID = m.nextID
	m.products[m.nextID] = *product
	return m.nextID, nil
}

func (m *mockProductRepository) Update(product *catalogmodel.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return catalogmodel.ErrProductNotFound
	}
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepository) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return catalogmodel.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}
