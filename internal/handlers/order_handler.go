package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/models"
	"comanda_manager/internal/services"
)

type OrderHandler struct {
	ledgerService  services.LedgerService
	productService services.ProductService
}

func NewOrderHandler(ledgerService services.LedgerService, productService services.ProductService) *OrderHandler {
	return &OrderHandler{
		ledgerService:  ledgerService,
		productService: productService,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.ledgerService.CreateOrder(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOpenOrders(c *gin.Context) {
	orders, err := h.ledgerService.GetOpenOrders()
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.ledgerService.GetOrderByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// AddItem resolves the product in the catalog and captures its current name
// and price onto the new line.
func (h *OrderHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.GetProduct(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	order, err := h.ledgerService.AddItemToOrder(c.Param("id"), product.ID, product.Name, req.Quantity, product.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelItem(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	var order *models.Order
	var err error
	if req.Quantity != nil {
		order, err = h.ledgerService.CancelItemQuantity(c.Param("id"), c.Param("item_id"), *req.Quantity)
	} else {
		order, err = h.ledgerService.CancelItem(c.Param("id"), c.Param("item_id"))
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RemoveItem(c *gin.Context) {
	order, err := h.ledgerService.RemoveItem(c.Param("id"), c.Param("item_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) SetDiscount(c *gin.Context) {
	var req struct {
		Discount float64 `json:"discount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.ledgerService.SetOrderDiscount(c.Param("id"), req.Discount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) AddPartialPayment(c *gin.Context) {
	var req struct {
		Amount float64              `json:"amount"`
		Method models.PaymentMethod `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.ledgerService.AddPartialPayment(c.Param("id"), req.Amount, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RemovePartialPayment(c *gin.Context) {
	order, err := h.ledgerService.RemovePartialPayment(c.Param("id"), c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetRemainingBalance(c *gin.Context) {
	balance, err := h.ledgerService.GetRemainingBalance(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"remaining_balance": balance})
}

func (h *OrderHandler) PayOrder(c *gin.Context) {
	var req struct {
		Method models.PaymentMethod `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	order, err := h.ledgerService.PayOrder(c.Param("id"), req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	order, err := h.ledgerService.CancelOrder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) GetHistory(c *gin.Context) {
	history, err := h.ledgerService.GetHistory()
	if err != nil {
		respondError(c, err)
		return
	}
	if history == nil {
		history = []models.Order{}
	}
	c.JSON(http.StatusOK, history)
}

func (h *OrderHandler) DeleteFromHistory(c *gin.Context) {
	if err := h.ledgerService.DeleteFromHistory(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
