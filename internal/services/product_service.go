package services

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/models"
	"comanda_manager/internal/repository"
)

// ProductService is the sellable-item catalog. Orders only read it when a
// line is added; edits here never rewrite prices captured on past lines.
type ProductService interface {
	GetProducts() ([]models.Product, error)
	GetProduct(productID string) (*models.Product, error)
	AddProduct(name string, price float64, forKitchen bool) (*models.Product, error)
	UpdateProduct(productID, name string, price float64, forKitchen bool) (*models.Product, error)
	DeleteProduct(productID string) error
	SeedDefaults() error
}

type productService struct {
	mu       sync.Mutex
	products repository.ProductRepository
	now      func() time.Time
	newID    func() string
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{
		products: products,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

func (s *productService) GetProducts() ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products.GetAll()
}

func (s *productService) GetProduct(productID string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID {
			product := products[i]
			return &product, nil
		}
	}
	return nil, apperrors.NewNotFound("product", productID)
}

func (s *productService) AddProduct(name string, price float64, forKitchen bool) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("product name is required")
	}
	if price <= 0 {
		return nil, apperrors.NewValidation("product price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:         s.newID(),
		Name:       name,
		Price:      price,
		ForKitchen: forKitchen,
		CreatedAt:  s.now(),
	}
	products = append(products, product)

	if err := s.products.SaveAll(products); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *productService) UpdateProduct(productID, name string, price float64, forKitchen bool) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("product name is required")
	}
	if price <= 0 {
		return nil, apperrors.NewValidation("product price must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == productID {
			products[i].Name = name
			products[i].Price = price
			products[i].ForKitchen = forKitchen
			if err := s.products.SaveAll(products); err != nil {
				return nil, err
			}
			product := products[i]
			return &product, nil
		}
	}
	return nil, apperrors.NewNotFound("product", productID)
}

func (s *productService) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == productID {
			products = append(products[:i], products[i+1:]...)
			return s.products.SaveAll(products)
		}
	}
	return apperrors.NewNotFound("product", productID)
}

// SeedDefaults loads the demo catalog into an empty product collection. A
// non-empty catalog is left alone.
func (s *productService) SeedDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.products.GetAll()
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	defaults := []struct {
		name       string
		price      float64
		forKitchen bool
	}{
		{"Água Mineral", 5.00, false},
		{"Refrigerante Lata", 7.00, false},
		{"Cerveja Long Neck", 12.00, false},
		{"Porção de Batata Frita", 35.00, true},
		{"Hambúrguer Artesanal", 42.00, true},
	}

	for _, d := range defaults {
		products = append(products, models.Product{
			ID:         s.newID(),
			Name:       d.name,
			Price:      d.price,
			ForKitchen: d.forKitchen,
			CreatedAt:  s.now(),
		})
	}
	return s.products.SaveAll(products)
}
