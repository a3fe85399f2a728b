package services

import (
	"bytes"
	"encoding/json"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/models"
	"comanda_manager/internal/repository"
)

// BackupDocument is the full-state export format: exactly three top-level
// arrays, one per persisted collection.
type BackupDocument struct {
	OpenOrders   []models.Order   `json:"open_orders"`
	OrderHistory []models.Order   `json:"order_history"`
	Products     []models.Product `json:"products"`
}

// BackupService exports and imports the whole persisted state. Import is
// all-or-nothing: the document is fully validated before anything is written,
// and on success it wholesale-replaces all three collections.
type BackupService interface {
	Export() (*BackupDocument, error)
	Import(data []byte) error
}

type backupService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func NewBackupService(orders repository.OrderRepository, products repository.ProductRepository) BackupService {
	return &backupService{orders: orders, products: products}
}

func (s *backupService) Export() (*BackupDocument, error) {
	open, err := s.orders.GetOpen()
	if err != nil {
		return nil, err
	}
	history, err := s.orders.GetHistory()
	if err != nil {
		return nil, err
	}
	products, err := s.products.GetAll()
	if err != nil {
		return nil, err
	}

	doc := &BackupDocument{
		OpenOrders:   open,
		OrderHistory: history,
		Products:     products,
	}
	if doc.OpenOrders == nil {
		doc.OpenOrders = []models.Order{}
	}
	if doc.OrderHistory == nil {
		doc.OrderHistory = []models.Order{}
	}
	if doc.Products == nil {
		doc.Products = []models.Product{}
	}
	return doc, nil
}

func (s *backupService) Import(data []byte) error {
	var raw struct {
		OpenOrders   json.RawMessage `json:"open_orders"`
		OrderHistory json.RawMessage `json:"order_history"`
		Products     json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperrors.NewValidation("invalid backup document: %v", err)
	}

	var doc BackupDocument
	if err := decodeArray(raw.OpenOrders, "open_orders", &doc.OpenOrders); err != nil {
		return err
	}
	if err := decodeArray(raw.OrderHistory, "order_history", &doc.OrderHistory); err != nil {
		return err
	}
	if err := decodeArray(raw.Products, "products", &doc.Products); err != nil {
		return err
	}

	if err := s.orders.ReplaceAll(doc.OpenOrders, doc.OrderHistory); err != nil {
		return err
	}
	return s.products.SaveAll(doc.Products)
}

// decodeArray insists the field is present and is a JSON array before
// decoding it, so a document with a missing or non-array field is rejected
// without touching state.
func decodeArray(raw json.RawMessage, field string, dest interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return apperrors.NewValidation("backup field %q must be an array", field)
	}
	if err := json.Unmarshal(trimmed, dest); err != nil {
		return apperrors.NewValidation("backup field %q is invalid: %v", field, err)
	}
	return nil
}
