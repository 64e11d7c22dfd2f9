package middleware

import (
	"net/http"

	"checkingo/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDMiddleware rejects requests whose session path parameter is
// not a well-formed uuid before they reach the wizard service.
func SessionIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing session id", "")
			c.Abort()
			return
		}
		if _, err := uuid.Parse(id); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed session id", err.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
