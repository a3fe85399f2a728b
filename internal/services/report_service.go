package services

import (
	"sort"
	"time"

	"comanda_manager/internal/apperrors"
	"comanda_manager/internal/models"
)

// Reporting periods over the sales history.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodAll   = "all"
)

const dateLayout = "2006-01-02"

// ReportService builds read-only projections over the ledger's data. It never
// mutates anything; every call re-reads the current snapshot.
type ReportService interface {
	TodayTotal() (float64, error)
	DailySales(period string) ([]models.DailySummary, error)
	PaymentMethodTotals(period string) ([]models.PaymentMethodTotal, error)
	TopProducts(period string) ([]models.ProductSales, error)
	Conference(date time.Time) (*models.DailyConference, error)
	Receipt(orderID string) (*models.Receipt, error)
	KitchenTicket(orderID string) (*models.KitchenTicket, error)
}

type reportService struct {
	ledger   LedgerService
	products ProductService
	now      func() time.Time
}

func NewReportService(ledger LedgerService, products ProductService) ReportService {
	return &reportService{
		ledger:   ledger,
		products: products,
		now:      time.Now,
	}
}

// TodayTotal sums the paid orders settled on the current local calendar day.
func (s *reportService) TodayTotal() (float64, error) {
	history, err := s.ledger.GetHistory()
	if err != nil {
		return 0, err
	}

	today := s.now()
	var total float64
	for _, order := range history {
		if order.Status == models.OrderPaid && sameDay(order.ClosedDay(), today) {
			total += order.Total
		}
	}
	return total, nil
}

func (s *reportService) DailySales(period string) ([]models.DailySummary, error) {
	orders, err := s.paidOrders(period)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*models.DailySummary)
	for _, order := range orders {
		date := order.ClosedDay().Format(dateLayout)
		summary, ok := byDate[date]
		if !ok {
			summary = &models.DailySummary{Date: date}
			byDate[date] = summary
		}
		summary.TotalSales += order.Total
		summary.OrderCount++
	}

	result := make([]models.DailySummary, 0, len(byDate))
	for _, summary := range byDate {
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

// PaymentMethodTotals breaks paid revenue down by method: partial payments
// count under their own method, whatever remained at close counts under the
// final payment method. Methods with no revenue are omitted.
func (s *reportService) PaymentMethodTotals(period string) ([]models.PaymentMethodTotal, error) {
	orders, err := s.paidOrders(period)
	if err != nil {
		return nil, err
	}

	totals := map[models.PaymentMethod]float64{}
	for _, order := range orders {
		for _, p := range order.PartialPayments {
			totals[p.Method] += p.Amount
		}
		if order.PaymentMethod != "" {
			totals[order.PaymentMethod] += order.RemainingBalance()
		}
	}

	result := []models.PaymentMethodTotal{}
	for _, method := range []models.PaymentMethod{models.PaymentCash, models.PaymentPix, models.PaymentCard} {
		if totals[method] > 0 {
			result = append(result, models.PaymentMethodTotal{Method: method, Total: totals[method]})
		}
	}
	return result, nil
}

func (s *reportService) TopProducts(period string) ([]models.ProductSales, error) {
	orders, err := s.paidOrders(period)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*models.ProductSales)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Cancelled {
				continue
			}
			sales, ok := byName[item.ProductName]
			if !ok {
				sales = &models.ProductSales{Name: item.ProductName}
				byName[item.ProductName] = sales
			}
			sales.Quantity += item.Quantity
			sales.Total += item.Total
		}
	}

	result := make([]models.ProductSales, 0, len(byName))
	for _, sales := range byName {
		result = append(result, *sales)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Total > result[j].Total })
	return result, nil
}

// Conference collects the closed orders of one calendar day for the daily
// cash conference, paid and cancelled alike, with a paid-only total.
func (s *reportService) Conference(date time.Time) (*models.DailyConference, error) {
	history, err := s.ledger.GetHistory()
	if err != nil {
		return nil, err
	}

	conference := &models.DailyConference{
		Date:   date.Format(dateLayout),
		Orders: []models.Order{},
	}
	for _, order := range history {
		if !sameDay(order.ClosedDay(), date) {
			continue
		}
		conference.Orders = append(conference.Orders, order)
		conference.OrderCount++
		if order.Status == models.OrderPaid {
			conference.PaidTotal += order.Total
			conference.PaidCount++
		}
	}
	return conference, nil
}

func (s *reportService) Receipt(orderID string) (*models.Receipt, error) {
	order, err := s.ledger.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	return &models.Receipt{
		Order:            *order,
		PaidAmount:       order.PaidAmount(),
		RemainingBalance: order.RemainingBalance(),
	}, nil
}

// KitchenTicket lists the active items of an open order whose catalog product
// is flagged for the kitchen. Items of deleted products are skipped.
func (s *reportService) KitchenTicket(orderID string) (*models.KitchenTicket, error) {
	order, err := s.ledger.GetOpenOrder(orderID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetProducts()
	if err != nil {
		return nil, err
	}
	forKitchen := make(map[string]bool, len(products))
	for _, p := range products {
		forKitchen[p.ID] = p.ForKitchen
	}

	ticket := &models.KitchenTicket{
		OrderID:   order.ID,
		OrderName: order.Name,
		Items:     []models.OrderItem{},
	}
	for _, item := range order.Items {
		if !item.Cancelled && forKitchen[item.ProductID] {
			ticket.Items = append(ticket.Items, item)
		}
	}
	return ticket, nil
}

// paidOrders returns the paid history records within the period, newest
// first as stored.
func (s *reportService) paidOrders(period string) ([]models.Order, error) {
	var cutoff time.Time
	switch period {
	case PeriodWeek:
		cutoff = s.now().AddDate(0, 0, -7)
	case PeriodMonth:
		cutoff = s.now().AddDate(0, 0, -30)
	case PeriodAll, "":
	default:
		return nil, apperrors.NewValidation("invalid period: %s", period)
	}

	history, err := s.ledger.GetHistory()
	if err != nil {
		return nil, err
	}

	result := []models.Order{}
	for _, order := range history {
		if order.Status != models.OrderPaid {
			continue
		}
		if !cutoff.IsZero() && order.ClosedDay().Before(cutoff) {
			continue
		}
		result = append(result, order)
	}
	return result, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
