package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	infralogger "github.com/growlocal360/maxx-energy/infrastructure/logger"
	"github.com/growlocal360/maxx-energy/internal/models"
	"github.com/growlocal360/maxx-energy/internal/richtext"
)

const maxListLimit = 100

// parseUUID parses a UUID route parameter, writing a 400 when it is malformed.
func parseUUID(c *gin.Context, paramName, entityType string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + entityType + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleRepositoryError maps store and request errors to HTTP responses.
func handleRepositoryError(c *gin.Context, err error, entityType, operation string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": entityType + " not found"})
	case errors.Is(err, models.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": entityType + " with this slug already exists"})
	case errors.Is(err, models.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, gin.H{"error": entityType + " references a missing record"})
	default:
		if handleValidationError(c, err) {
			return
		}
		infralogger.FromContext(c.Request.Context()).Error("Repository operation failed",
			infralogger.String("entity", entityType),
			infralogger.String("operation", operation),
			infralogger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to " + operation + " " + entityType,
		})
	}
}

// handleValidationError writes a 400 for request validation failures and
// reports whether err was one.
func handleValidationError(c *gin.Context, err error) bool {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field must be provided for update"})
	case errors.Is(err, models.ErrInvalidSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug must contain at least one letter or digit"})
	case errors.Is(err, richtext.ErrInvalidDocument):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rich text document", "details": err.Error()})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	default:
		return false
	}
	return true
}

// bindJSON binds the request body, writing a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return false
	}
	return true
}

// queryLimit reads ?limit=, capped at maxListLimit. Absent or invalid
// values mean no limit.
func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return 0
	}
	return min(n, maxListLimit)
}

// present fills computed fields on every element that implements
// models.Presenter.
func present[T any](items []T, detail bool) {
	for i := range items {
		if p, ok := any(&items[i]).(models.Presenter); ok {
			p.Present(detail)
		}
	}
}
