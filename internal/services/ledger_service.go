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

// amountEpsilon absorbs float noise when comparing a payment against the
// remaining balance, so paying the exact remainder always succeeds.
const amountEpsilon = 1e-9

// LedgerService is the order lifecycle and billing engine. It owns the open
// and history collections: every mutation reads the current snapshot,
// validates, computes the new snapshot and writes it back in one step. A
// failed operation leaves state untouched.
type LedgerService interface {
	CreateOrder(name string) (*models.Order, error)
	GetOpenOrders() ([]models.Order, error)
	GetOpenOrder(orderID string) (*models.Order, error)
	GetOrderByID(orderID string) (*models.Order, error)
	AddItemToOrder(orderID, productID, productName string, quantity int, unitPrice float64) (*models.Order, error)
	CancelItem(orderID, itemID string) (*models.Order, error)
	CancelItemQuantity(orderID, itemID string, quantity int) (*models.Order, error)
	RemoveItem(orderID, itemID string) (*models.Order, error)
	SetOrderDiscount(orderID string, discount float64) (*models.Order, error)
	AddPartialPayment(orderID string, amount float64, method models.PaymentMethod) (*models.Order, error)
	RemovePartialPayment(orderID, paymentID string) (*models.Order, error)
	GetRemainingBalance(orderID string) (float64, error)
	PayOrder(orderID string, method models.PaymentMethod) (*models.Order, error)
	CancelOrder(orderID string) (*models.Order, error)
	GetHistory() ([]models.Order, error)
	DeleteFromHistory(orderID string) error
}

type ledgerService struct {
	mu     sync.Mutex
	orders repository.OrderRepository
	now    func() time.Time
	newID  func() string
}

func NewLedgerService(orders repository.OrderRepository) LedgerService {
	return &ledgerService{
		orders: orders,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (s *ledgerService) CreateOrder(name string) (*models.Order, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidation("order name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ID:       s.newID(),
		Name:     name,
		OpenedAt: s.now(),
		Items:    []models.OrderItem{},
		Status:   models.OrderOpen,
		Total:    0,
	}
	orders = append(orders, order)

	if err := s.orders.SaveOpen(orders); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *ledgerService) GetOpenOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.GetOpen()
}

func (s *ledgerService) GetOpenOrder(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}
	idx := findOrder(orders, orderID)
	if idx < 0 {
		return nil, apperrors.NewNotFound("order", orderID)
	}
	order := orders[idx]
	return &order, nil
}

// GetOrderByID looks the order up in the open set first, then in history.
// Receipts use this, since an order may have been closed since it was listed.
func (s *ledgerService) GetOrderByID(orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}
	if idx := findOrder(open, orderID); idx >= 0 {
		order := open[idx]
		return &order, nil
	}

	history, err := s.orders.GetHistory()
	if err != nil {
		return nil, err
	}
	if idx := findOrder(history, orderID); idx >= 0 {
		order := history[idx]
		return &order, nil
	}
	return nil, apperrors.NewNotFound("order", orderID)
}

func (s *ledgerService) AddItemToOrder(orderID, productID, productName string, quantity int, unitPrice float64) (*models.Order, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidation("quantity must be a positive integer")
	}
	if unitPrice < 0 {
		return nil, apperrors.NewValidation("unit price cannot be negative")
	}

	return s.mutateOpen(orderID, func(order *models.Order) error {
		// Merge policy: re-adding a product tops up its active row at the
		// row's captured unit price.
		for i := range order.Items {
			item := &order.Items[i]
			if !item.Cancelled && item.ProductID == productID {
				item.Quantity += quantity
				item.Total = float64(item.Quantity) * item.UnitPrice
				order.RecomputeTotal()
				return nil
			}
		}

		order.Items = append(order.Items, models.OrderItem{
			ID:          s.newID(),
			ProductID:   productID,
			ProductName: productName,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       float64(quantity) * unitPrice,
			Cancelled:   false,
		})
		order.RecomputeTotal()
		return nil
	})
}

// CancelItem marks the whole item row cancelled. The row keeps its quantity
// and total for audit; it just stops counting toward the order total.
func (s *ledgerService) CancelItem(orderID, itemID string) (*models.Order, error) {
	return s.mutateOpen(orderID, func(order *models.Order) error {
		idx := findItem(order.Items, itemID)
		if idx < 0 {
			return apperrors.NewNotFound("item", itemID)
		}
		order.Items[idx].Cancelled = true
		order.RecomputeTotal()
		return nil
	})
}

// CancelItemQuantity cancels part of an item row. Cancelling fewer units than
// the row holds splits it: the active row shrinks and a fresh cancelled row
// records exactly how many units came off. Cancelling the full quantity or
// more degenerates to a whole-row cancel.
func (s *ledgerService) CancelItemQuantity(orderID, itemID string, quantity int) (*models.Order, error) {
	if quantity <= 0 {
		return nil, apperrors.NewValidation("cancel quantity must be a positive integer")
	}

	return s.mutateOpen(orderID, func(order *models.Order) error {
		idx := findItem(order.Items, itemID)
		if idx < 0 {
			return apperrors.NewNotFound("item", itemID)
		}
		item := &order.Items[idx]

		if quantity >= item.Quantity {
			item.Cancelled = true
			order.RecomputeTotal()
			return nil
		}

		item.Quantity -= quantity
		item.Total = float64(item.Quantity) * item.UnitPrice

		order.Items = append(order.Items, models.OrderItem{
			ID:          s.newID(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
			Total:       float64(quantity) * item.UnitPrice,
			Cancelled:   true,
		})
		order.RecomputeTotal()
		return nil
	})
}

func (s *ledgerService) RemoveItem(orderID, itemID string) (*models.Order, error) {
	return s.mutateOpen(orderID, func(order *models.Order) error {
		idx := findItem(order.Items, itemID)
		if idx < 0 {
			return apperrors.NewNotFound("item", itemID)
		}
		order.Items = append(order.Items[:idx], order.Items[idx+1:]...)
		order.RecomputeTotal()
		return nil
	})
}

func (s *ledgerService) SetOrderDiscount(orderID string, discount float64) (*models.Order, error) {
	if discount < 0 {
		discount = 0
	}
	return s.mutateOpen(orderID, func(order *models.Order) error {
		order.Discount = discount
		order.RecomputeTotal()
		return nil
	})
}

func (s *ledgerService) AddPartialPayment(orderID string, amount float64, method models.PaymentMethod) (*models.Order, error) {
	if amount <= 0 {
		return nil, apperrors.NewValidation("payment amount must be positive")
	}
	if !models.ValidPaymentMethod(method) {
		return nil, apperrors.NewValidation("invalid payment method: %s", method)
	}

	return s.mutateOpen(orderID, func(order *models.Order) error {
		remaining := order.RemainingBalance()
		if amount-remaining > amountEpsilon {
			return apperrors.NewValidation("payment of %.2f exceeds remaining balance of %.2f", amount, remaining)
		}
		order.PartialPayments = append(order.PartialPayments, models.PartialPayment{
			ID:     s.newID(),
			Amount: amount,
			Method: method,
			PaidAt: s.now(),
		})
		return nil
	})
}

// RemovePartialPayment drops a recorded payment. The order total is not
// touched; payments track how much of the total is settled, not the total.
func (s *ledgerService) RemovePartialPayment(orderID, paymentID string) (*models.Order, error) {
	return s.mutateOpen(orderID, func(order *models.Order) error {
		for i, p := range order.PartialPayments {
			if p.ID == paymentID {
				order.PartialPayments = append(order.PartialPayments[:i], order.PartialPayments[i+1:]...)
				return nil
			}
		}
		return apperrors.NewNotFound("payment", paymentID)
	})
}

func (s *ledgerService) GetRemainingBalance(orderID string) (float64, error) {
	order, err := s.GetOpenOrder(orderID)
	if err != nil {
		return 0, err
	}
	return order.RemainingBalance(), nil
}

func (s *ledgerService) PayOrder(orderID string, method models.PaymentMethod) (*models.Order, error) {
	if !models.ValidPaymentMethod(method) {
		return nil, apperrors.NewValidation("invalid payment method: %s", method)
	}
	return s.finalizeOrder(orderID, models.OrderPaid, method)
}

func (s *ledgerService) CancelOrder(orderID string) (*models.Order, error) {
	return s.finalizeOrder(orderID, models.OrderCancelled, "")
}

// finalizeOrder closes an order: stamps closedAt and the terminal status,
// prepends the record to history and drops it from the open set. Both
// collections are replaced in a single repository call so the order is never
// visible in both or in neither.
func (s *ledgerService) finalizeOrder(orderID string, status models.OrderStatus, method models.PaymentMethod) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}
	idx := findOrder(open, orderID)
	if idx < 0 {
		return nil, apperrors.NewNotFound("order", orderID)
	}

	history, err := s.orders.GetHistory()
	if err != nil {
		return nil, err
	}

	closed := open[idx]
	closedAt := s.now()
	closed.ClosedAt = &closedAt
	closed.Status = status
	if status == models.OrderPaid {
		closed.PaymentMethod = method
	}

	open = append(open[:idx], open[idx+1:]...)
	history = append([]models.Order{closed}, history...)

	if err := s.orders.ReplaceAll(open, history); err != nil {
		return nil, err
	}
	return &closed, nil
}

func (s *ledgerService) GetHistory() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.GetHistory()
}

// DeleteFromHistory permanently removes a closed record. Irreversible; any
// confirmation step belongs to the caller.
func (s *ledgerService) DeleteFromHistory(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, err := s.orders.GetHistory()
	if err != nil {
		return err
	}
	idx := findOrder(history, orderID)
	if idx < 0 {
		return apperrors.NewNotFound("order", orderID)
	}
	history = append(history[:idx], history[idx+1:]...)
	return s.orders.SaveHistory(history)
}

// mutateOpen runs fn against the order inside the open-orders snapshot and
// persists the snapshot only if fn succeeds.
func (s *ledgerService) mutateOpen(orderID string, fn func(order *models.Order) error) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}
	idx := findOrder(orders, orderID)
	if idx < 0 {
		return nil, apperrors.NewNotFound("order", orderID)
	}

	if err := fn(&orders[idx]); err != nil {
		return nil, err
	}

	if err := s.orders.SaveOpen(orders); err != nil {
		return nil, err
	}
	order := orders[idx]
	return &order, nil
}

func findOrder(orders []models.Order, orderID string) int {
	for i := range orders {
		if orders[i].ID == orderID {
			return i
		}
	}
	return -1
}

func findItem(items []models.OrderItem, itemID string) int {
	for i := range items {
		if items[i].ID == itemID {
			return i
		}
	}
	return -1
}
