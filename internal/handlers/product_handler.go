package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/models"
	"comanda_manager/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req struct {
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		ForKitchen bool    `json:"for_kitchen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.AddProduct(req.Name, req.Price, req.ForKitchen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req struct {
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		ForKitchen bool    `json:"for_kitchen"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Param("id"), req.Name, req.Price, req.ForKitchen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
