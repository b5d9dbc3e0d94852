package controllers

import (
	"errors"
	"net/http"

	"voyago/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// validation → 400, not found → 404, conflict (including lost seat races) → 409.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr services.ValidationError
		notFoundErr   services.NotFoundError
		conflictErr   services.ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
