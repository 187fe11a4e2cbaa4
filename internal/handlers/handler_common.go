package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/gin-gonic/gin"
)

// companyIDFromPath parses the :companyID path parameter.
func companyIDFromPath(c *gin.Context) (int64, bool) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid company ID"})
		return 0, false
	}
	return companyID, true
}

// currentUserID identifies the acting administrator for audit fields.
// Authentication is handled upstream by the API gateway, which forwards the
// identity in this header.
func currentUserID(c *gin.Context) string {
	if userID := c.GetHeader("X-User-ID"); userID != "" {
		return userID
	}
	return "admin"
}

// statusForKind maps generation error kinds to HTTP status codes.
func statusForKind(kind apperrors.ErrorKind) int {
	if kind == apperrors.KindEventNotFound {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

// respondError translates service errors to the wire. Generation errors use
// the structured {success:false, kind, message, detail} shape; the rest use
// the plain error envelope.
func respondError(c *gin.Context, err error) {
	if genErr, ok := apperrors.AsGenerationError(err); ok {
		c.JSON(statusForKind(genErr.Kind), dto.ToGenerateErrorResponse(genErr))
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPeriodClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
