package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/services"
)

type ReportHandler struct {
	reportService services.ReportService
}

func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) GetTodayTotal(c *gin.Context) {
	total, err := h.reportService.TodayTotal()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"today_total": total})
}

func (h *ReportHandler) GetDailySales(c *gin.Context) {
	summaries, err := h.reportService.DailySales(c.DefaultQuery("period", services.PeriodAll))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *ReportHandler) GetPaymentMethodTotals(c *gin.Context) {
	totals, err := h.reportService.PaymentMethodTotals(c.DefaultQuery("period", services.PeriodAll))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *ReportHandler) GetTopProducts(c *gin.Context) {
	products, err := h.reportService.TopProducts(c.DefaultQuery("period", services.PeriodAll))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ReportHandler) GetConference(c *gin.Context) {
	dateParam := c.Query("date")
	date := time.Now()
	if dateParam != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	conference, err := h.reportService.Conference(date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conference)
}

func (h *ReportHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.reportService.Receipt(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *ReportHandler) GetKitchenTicket(c *gin.Context) {
	ticket, err := h.reportService.KitchenTicket(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
