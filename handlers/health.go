package handlers

import (
	"net/http"

	"checkingo/utils"

	"github.com/gin-gonic/gin"
)

// Health returns the latest service snapshot.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
