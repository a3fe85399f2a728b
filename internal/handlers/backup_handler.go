package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"comanda_manager/internal/services"
)

type BackupHandler struct {
	backupService services.BackupService
}

func NewBackupHandler(backupService services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

func (h *BackupHandler) Export(c *gin.Context) {
	doc, err := h.backupService.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *BackupHandler) Import(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.backupService.Import(data); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "imported"})
}
