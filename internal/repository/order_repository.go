package repository

import (
	"comanda_manager/internal/models"
	"comanda_manager/internal/storage"
)

// OrderRepository owns the open-orders and order-history collections. An
// order record lives in exactly one of the two; moving between them goes
// through ReplaceAll so both snapshots change in a single call.
type OrderRepository interface {
	GetOpen() ([]models.Order, error)
	SaveOpen(orders []models.Order) error
	GetHistory() ([]models.Order, error)
	SaveHistory(orders []models.Order) error
	ReplaceAll(open, history []models.Order) error
}

type orderRepository struct {
	store storage.Store
}

func NewOrderRepository(store storage.Store) OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) GetOpen() ([]models.Order, error) {
	var orders []models.Order
	err := r.store.Load(storage.CollectionOpenOrders, &orders)
	return orders, err
}

func (r *orderRepository) SaveOpen(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return r.store.Save(storage.CollectionOpenOrders, orders)
}

func (r *orderRepository) GetHistory() ([]models.Order, error) {
	var orders []models.Order
	err := r.store.Load(storage.CollectionOrderHistory, &orders)
	return orders, err
}

func (r *orderRepository) SaveHistory(orders []models.Order) error {
	if orders == nil {
		orders = []models.Order{}
	}
	return r.store.Save(storage.CollectionOrderHistory, orders)
}

func (r *orderRepository) ReplaceAll(open, history []models.Order) error {
	if open == nil {
		open = []models.Order{}
	}
	if history == nil {
		history = []models.Order{}
	}
	return r.store.SaveAll(map[string]interface{}{
		storage.CollectionOpenOrders:   open,
		storage.CollectionOrderHistory: history,
	})
}
