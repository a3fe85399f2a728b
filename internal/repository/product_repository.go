package repository

import (
	"comanda_manager/internal/models"
	"comanda_manager/internal/storage"
)

type ProductRepository interface {
	GetAll() ([]models.Product, error)
	SaveAll(products []models.Product) error
}

type productRepository struct {
	store storage.Store
}

func NewProductRepository(store storage.Store) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	err := r.store.Load(storage.CollectionProducts, &products)
	return products, err
}

func (r *productRepository) SaveAll(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return r.store.Save(storage.CollectionProducts, products)
}
