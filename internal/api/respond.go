package api

import (
	"errors"
	"log"
	"net/http"

	"gym-admin/internal/repository"
	"gym-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// respondRecordError maps record-operation failures onto HTTP status codes.
// Storage failures are logged with detail but surface as an opaque 500 so
// file-system specifics never leak to the client.
func respondRecordError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		abortWithError(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, service.ErrInvalidInput):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrStorage):
		log.Printf("ERROR: Storage failure on %s operation: %v", resource, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to persist "+resource)
	default:
		log.Printf("ERROR: Unexpected error on %s operation: %v", resource, err)
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
