package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/models"
	"comanda_manager/internal/repository"
	"comanda_manager/internal/storage"
)

// UTC keeps the time values comparable after a JSON round trip.
var backupTime = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func newBackupFixture(t *testing.T) (*backupService, repository.OrderRepository, repository.ProductRepository) {
	t.Helper()
	store := storage.NewMemoryStore()
	orderRepo := repository.NewOrderRepository(store)
	productRepo := repository.NewProductRepository(store)
	return &backupService{orders: orderRepo, products: productRepo}, orderRepo, productRepo
}

func TestExportEmptyState(t *testing.T) {
	svc, _, _ := newBackupFixture(t)

	doc, err := svc.Export()
	require.NoError(t, err)

	// Empty collections export as empty arrays, never null.
	assert.NotNil(t, doc.OpenOrders)
	assert.NotNil(t, doc.OrderHistory)
	assert.NotNil(t, doc.Products)
	assert.Empty(t, doc.OpenOrders)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, orderRepo, productRepo := newBackupFixture(t)

	open := []models.Order{{ID: "o1", Name: "Mesa 1", OpenedAt: backupTime, Status: models.OrderOpen,
		Items: []models.OrderItem{{ID: "i1", ProductID: "p1", ProductName: "Cerveja", Quantity: 2, UnitPrice: 12.00, Total: 24.00}},
		Total: 24.00}}
	closedAt := backupTime
	history := []models.Order{{ID: "o2", Name: "Mesa 2", OpenedAt: backupTime, ClosedAt: &closedAt,
		Status: models.OrderPaid, PaymentMethod: models.PaymentPix, Total: 10.00,
		PartialPayments: []models.PartialPayment{{ID: "pay1", Amount: 6.00, Method: models.PaymentCash, PaidAt: backupTime}}}}
	products := []models.Product{{ID: "p1", Name: "Cerveja", Price: 12.00, CreatedAt: backupTime}}

	require.NoError(t, orderRepo.ReplaceAll(open, history))
	require.NoError(t, productRepo.SaveAll(products))

	doc, err := svc.Export()
	require.NoError(t, err)
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	// Wipe everything, then restore from the exported document.
	require.NoError(t, orderRepo.ReplaceAll(nil, nil))
	require.NoError(t, productRepo.SaveAll(nil))

	require.NoError(t, svc.Import(data))

	restoredOpen, err := orderRepo.GetOpen()
	require.NoError(t, err)
	restoredHistory, err := orderRepo.GetHistory()
	require.NoError(t, err)
	restoredProducts, err := productRepo.GetAll()
	require.NoError(t, err)

	assert.Equal(t, open, restoredOpen)
	assert.Equal(t, history, restoredHistory)
	assert.Equal(t, products, restoredProducts)
}

func TestImportRejectsNonArrayFields(t *testing.T) {
	svc, orderRepo, _ := newBackupFixture(t)
	require.NoError(t, orderRepo.SaveOpen([]models.Order{{ID: "keep", Name: "Mesa 1", Status: models.OrderOpen}}))

	bad := []string{
		`{"open_orders": {}, "order_history": [], "products": []}`,
		`{"open_orders": [], "order_history": "nope", "products": []}`,
		`{"open_orders": [], "order_history": [], "products": null}`,
		`{"open_orders": [], "order_history": []}`,
		`not json at all`,
	}
	for _, doc := range bad {
		err := svc.Import([]byte(doc))
		assert.True(t, apperrors.IsValidation(err), "document %q should be rejected", doc)
	}

	// Rejected imports leave existing state untouched.
	open, err := orderRepo.GetOpen()
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "keep", open[0].ID)
}

func TestImportReplacesAllCollections(t *testing.T) {
	svc, orderRepo, productRepo := newBackupFixture(t)
	require.NoError(t, orderRepo.SaveOpen([]models.Order{{ID: "stale", Name: "Old", Status: models.OrderOpen}}))
	require.NoError(t, productRepo.SaveAll([]models.Product{{ID: "stale-p", Name: "Old", Price: 1.00}}))

	require.NoError(t, svc.Import([]byte(`{"open_orders": [], "order_history": [], "products": []}`)))

	open, err := orderRepo.GetOpen()
	require.NoError(t, err)
	assert.Empty(t, open)
	products, err := productRepo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, products)
}
