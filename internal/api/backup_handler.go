package api

import (
	"errors"
	"net/http"

	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// BackupHandler holds the backup service dependency.
type BackupHandler struct {
	backupService service.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(backupService service.BackupService) *BackupHandler {
	return &BackupHandler{backupService: backupService}
}

// CreateBackup exports the database image to object storage.
// POST /api/v1/admin/backups
func (h *BackupHandler) CreateBackup(c *gin.Context) {
	result, err := h.backupService.Run(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBackupFailed) {
			abortWithError(c, http.StatusInternalServerError, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during backup")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GetBackupURL returns a fresh presigned download URL for a stored snapshot.
// GET /api/v1/admin/backups/:name/url
func (h *BackupHandler) GetBackupURL(c *gin.Context) {
	url, err := h.backupService.PresignDownload(c.Request.Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
