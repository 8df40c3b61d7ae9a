package middlewares

import (
	"net/http"

	"passenger-service/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Recovery middleware recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
