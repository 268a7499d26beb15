package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"konoba/utils"
)

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
