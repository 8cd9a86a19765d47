package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Mouss-42/ReactSituPro-main/pkg/catalog/domain/model"
	"github.com/Mouss-42/ReactSituPro-main/pkg/common/domain"
)

type ProductService interface {
	ListProducts() ([]model.Product, error)
	GetProduct(id int64) (*model.Product, error)
	CreateProduct(name string, price decimal.Decimal) (*model.Product, error)
	UpdateProduct(id int64, name string, price decimal.Decimal) (*model.Product, error)
	DeleteProduct(id int64) error
}

func NewProductService(repo model.ProductRepository, dispatcher domain.EventDispatcher) ProductService {
	return &productService{repo: repo, dispatcher: dispatcher}
}

type productService struct {
	repo       model.ProductRepository
	dispatcher domain.EventDispatcher
}

func (s *productService) ListProducts() ([]model.Product, error) {
	return s.repo.List()
}

func (s *productService) GetProduct(id int64) (*model.Product, error) {
	return s.repo.Find(id)
}

func (s *productService) CreateProduct(name string, price decimal.Decimal) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, price); err != nil {
		return nil, err
	}

	product := &model.Product{Name: name, Price: price}
	id, err := s.repo.Create(product)
	if err != nil {
		return nil, err
	}
	product.ID = id

	_ = s.dispatcher.Dispatch(model.ProductCreated{ProductID: id, Name: name})
	return product, nil
}

func (s *productService) UpdateProduct(id int64, name string, price decimal.Decimal) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, price); err != nil {
		return nil, err
	}

	product, err := s.repo.Find(id)
	if err != nil {
		return nil, err
	}

	oldPrice := product.Price
	product.Name = name
	product.Price = price

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Dispatch(model.ProductUpdated{ProductID: id, OldPrice: oldPrice, NewPrice: price})
	return product, nil
}

func (s *productService) DeleteProduct(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	_ = s.dispatcher.Dispatch(model.ProductDeleted{ProductID: id})
	return nil
}

func validate(name string, price decimal.Decimal) error {
	if name == "" {
		return model.ErrNameRequired
	}
	if price.IsNegative() {
		return model.ErrNegativePrice
	}
	return nil
}
