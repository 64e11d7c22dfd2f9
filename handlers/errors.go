package handlers

import (
	"errors"
	"net/http"

	"checkingo/services/intake"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the intake service error taxonomy to HTTP
// status codes: missing sessions are 404, wrong-screen operations are
// 409, rejected input is 422.
func respondServiceError(c *gin.Context, err error) {
	var sessionErr *intake.SessionError
	if errors.As(err, &sessionErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": sessionErr.Message})
		return
	}

	var flowErr *intake.FlowError
	if errors.As(err, &flowErr) {
		c.JSON(http.StatusConflict, gin.H{"error": flowErr.Message})
		return
	}

	var validationErr *intake.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validationErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
