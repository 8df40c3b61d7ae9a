package handlers

import (
	"net/http"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/api/models"

	"github.com/gin-gonic/gin"
)

// Login verifies credentials and issues a token.
// An unknown email answers 404 rather than 401; this mirrors the rest of the
// passenger API, at the cost of revealing account existence to callers.
func Login(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithComponent("auth")

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				models.NewValidationErrorResponse(models.FieldErrorsFromBinding(err)))
			return
		}

		token, passenger, err := services.LoginVerifier().Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			status, message := models.StatusForAuthError(err)
			log.Warning("Login failed for %s: %v", req.Email, err)
			c.JSON(status, models.NewErrorResponse(message))
			return
		}

		log.Info("Passenger %d logged in", passenger.ID)
		c.JSON(http.StatusOK, models.NewSuccessResponse(models.TokenData{Token: token}))
	}
}
