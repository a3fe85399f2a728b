package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/models"
	"comanda_manager/internal/repository"
	"comanda_manager/internal/storage"
)

type reportFixture struct {
	report   *reportService
	orders   repository.OrderRepository
	products repository.ProductRepository
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	orderRepo := repository.NewOrderRepository(store)
	productRepo := repository.NewProductRepository(store)

	counter := 0
	newID := func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}
	now := func() time.Time { return testTime }

	ledger := &ledgerService{orders: orderRepo, now: now, newID: newID}
	products := &productService{products: productRepo, now: now, newID: newID}

	return &reportFixture{
		report:   &reportService{ledger: ledger, products: products, now: now},
		orders:   orderRepo,
		products: productRepo,
	}
}

func closedOrder(id string, status models.OrderStatus, method models.PaymentMethod, closedAt time.Time, items []models.OrderItem, partials []models.PartialPayment) models.Order {
	order := models.Order{
		ID:              id,
		Name:            "Mesa " + id,
		OpenedAt:        closedAt.Add(-time.Hour),
		ClosedAt:        &closedAt,
		Items:           items,
		Status:          status,
		PaymentMethod:   method,
		PartialPayments: partials,
	}
	order.RecomputeTotal()
	return order
}

func item(productID string, qty int, price float64) models.OrderItem {
	return models.OrderItem{
		ID:          productID + "-item",
		ProductID:   productID,
		ProductName: "Product " + productID,
		Quantity:    qty,
		UnitPrice:   price,
		Total:       float64(qty) * price,
	}
}

func TestTodayTotal(t *testing.T) {
	f := newReportFixture(t)
	yesterday := testTime.AddDate(0, 0, -1)

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentCash, testTime, []models.OrderItem{item("p1", 1, 10.00)}, nil),
		closedOrder("o2", models.OrderPaid, models.PaymentPix, testTime, []models.OrderItem{item("p2", 1, 15.00)}, nil),
		closedOrder("o3", models.OrderPaid, models.PaymentCash, yesterday, []models.OrderItem{item("p1", 1, 99.00)}, nil),
		closedOrder("o4", models.OrderCancelled, "", testTime, []models.OrderItem{item("p1", 5, 10.00)}, nil),
	}))

	total, err := f.report.TodayTotal()
	require.NoError(t, err)
	assert.Equal(t, 25.00, total)
}

func TestDailySales(t *testing.T) {
	f := newReportFixture(t)
	dayBefore := testTime.AddDate(0, 0, -2)

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentCash, testTime, []models.OrderItem{item("p1", 1, 10.00)}, nil),
		closedOrder("o2", models.OrderPaid, models.PaymentCash, testTime, []models.OrderItem{item("p1", 2, 10.00)}, nil),
		closedOrder("o3", models.OrderPaid, models.PaymentCard, dayBefore, []models.OrderItem{item("p2", 1, 40.00)}, nil),
	}))

	summaries, err := f.report.DailySales(PeriodAll)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, dayBefore.Format(dateLayout), summaries[0].Date)
	assert.Equal(t, 40.00, summaries[0].TotalSales)
	assert.Equal(t, 1, summaries[0].OrderCount)
	assert.Equal(t, testTime.Format(dateLayout), summaries[1].Date)
	assert.Equal(t, 30.00, summaries[1].TotalSales)
	assert.Equal(t, 2, summaries[1].OrderCount)
}

func TestDailySalesPeriodFilter(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("recent", models.OrderPaid, models.PaymentCash, testTime.AddDate(0, 0, -2), []models.OrderItem{item("p1", 1, 10.00)}, nil),
		closedOrder("old", models.OrderPaid, models.PaymentCash, testTime.AddDate(0, 0, -10), []models.OrderItem{item("p1", 1, 50.00)}, nil),
	}))

	week, err := f.report.DailySales(PeriodWeek)
	require.NoError(t, err)
	require.Len(t, week, 1)
	assert.Equal(t, 10.00, week[0].TotalSales)

	all, err := f.report.DailySales(PeriodAll)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.report.DailySales("fortnight")
	assert.True(t, apperrors.IsValidation(err))
}

func TestPaymentMethodTotals(t *testing.T) {
	f := newReportFixture(t)

	// 10.00 order: 6.00 paid cash up front, the remaining 4.00 settled pix.
	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentPix, testTime,
			[]models.OrderItem{item("p1", 1, 10.00)},
			[]models.PartialPayment{{ID: "pay-1", Amount: 6.00, Method: models.PaymentCash, PaidAt: testTime}},
		),
	}))

	totals, err := f.report.PaymentMethodTotals(PeriodAll)
	require.NoError(t, err)

	require.Len(t, totals, 2)
	assert.Equal(t, models.PaymentCash, totals[0].Method)
	assert.Equal(t, 6.00, totals[0].Total)
	assert.Equal(t, models.PaymentPix, totals[1].Method)
	assert.Equal(t, 4.00, totals[1].Total)
}

func TestTopProducts(t *testing.T) {
	f := newReportFixture(t)

	cancelled := item("p3", 4, 100.00)
	cancelled.Cancelled = true

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentCash, testTime,
			[]models.OrderItem{item("p1", 2, 10.00), item("p2", 1, 42.00), cancelled}, nil),
		closedOrder("o2", models.OrderPaid, models.PaymentCash, testTime,
			[]models.OrderItem{item("p1", 3, 10.00)}, nil),
	}))

	products, err := f.report.TopProducts(PeriodAll)
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Product p1", products[0].Name)
	assert.Equal(t, 5, products[0].Quantity)
	assert.Equal(t, 50.00, products[0].Total)
	assert.Equal(t, "Product p2", products[1].Name)
	assert.Equal(t, 42.00, products[1].Total)
}

func TestConference(t *testing.T) {
	f := newReportFixture(t)
	otherDay := testTime.AddDate(0, 0, -3)

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentCash, testTime, []models.OrderItem{item("p1", 1, 10.00)}, nil),
		closedOrder("o2", models.OrderCancelled, "", testTime, []models.OrderItem{item("p1", 1, 20.00)}, nil),
		closedOrder("o3", models.OrderPaid, models.PaymentCash, otherDay, []models.OrderItem{item("p1", 1, 30.00)}, nil),
	}))

	conference, err := f.report.Conference(testTime)
	require.NoError(t, err)

	assert.Equal(t, testTime.Format(dateLayout), conference.Date)
	assert.Equal(t, 2, conference.OrderCount)
	assert.Equal(t, 1, conference.PaidCount)
	assert.Equal(t, 10.00, conference.PaidTotal)
	require.Len(t, conference.Orders, 2)
}

func TestReceipt(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.orders.SaveHistory([]models.Order{
		closedOrder("o1", models.OrderPaid, models.PaymentPix, testTime,
			[]models.OrderItem{item("p1", 1, 10.00)},
			[]models.PartialPayment{{ID: "pay-1", Amount: 6.00, Method: models.PaymentCash, PaidAt: testTime}},
		),
	}))

	receipt, err := f.report.Receipt("o1")
	require.NoError(t, err)
	assert.Equal(t, "o1", receipt.Order.ID)
	assert.Equal(t, 6.00, receipt.PaidAmount)
	assert.Equal(t, 4.00, receipt.RemainingBalance)

	_, err = f.report.Receipt("missing")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestKitchenTicket(t *testing.T) {
	f := newReportFixture(t)

	require.NoError(t, f.products.SaveAll([]models.Product{
		{ID: "p-burger", Name: "Hambúrguer", Price: 42.00, ForKitchen: true},
		{ID: "p-beer", Name: "Cerveja", Price: 12.00, ForKitchen: false},
	}))

	cancelledBurger := item("p-burger", 1, 42.00)
	cancelledBurger.ID = "cancelled-burger"
	cancelledBurger.Cancelled = true

	require.NoError(t, f.orders.SaveOpen([]models.Order{{
		ID:       "o1",
		Name:     "Mesa 1",
		OpenedAt: testTime,
		Status:   models.OrderOpen,
		Items: []models.OrderItem{
			item("p-burger", 2, 42.00),
			item("p-beer", 3, 12.00),
			cancelledBurger,
			item("p-deleted", 1, 5.00),
		},
	}}))

	ticket, err := f.report.KitchenTicket("o1")
	require.NoError(t, err)

	assert.Equal(t, "o1", ticket.OrderID)
	assert.Equal(t, "Mesa 1", ticket.OrderName)
	require.Len(t, ticket.Items, 1)
	assert.Equal(t, "p-burger", ticket.Items[0].ProductID)
	assert.Equal(t, 2, ticket.Items[0].Quantity)

	_, err = f.report.KitchenTicket("missing")
	assert.True(t, apperrors.IsNotFound(err))
}
