package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/apperrors"
)

// respondError maps engine errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
