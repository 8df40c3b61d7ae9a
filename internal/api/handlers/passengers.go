package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/api/middlewares"
	"passenger-service/internal/api/models"
	"passenger-service/internal/database"

	"github.com/gin-gonic/gin"
)

// ListPassengers returns all passengers. Public endpoint.
func ListPassengers(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		passengers, err := services.PassengerStore().List(c.Request.Context())
		if err != nil {
			services.GetLogger().Error("Failed to list passengers: %v", err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		c.JSON(http.StatusOK, models.NewSuccessResponse(passengers))
	}
}

// CreatePassenger registers a new passenger and issues a token snapshotting
// the created record. Public endpoint.
func CreatePassenger(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithComponent("passengers")

		var req models.PassengerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				models.NewValidationErrorResponse(models.FieldErrorsFromBinding(err)))
			return
		}

		passenger := &database.Passenger{
			Name:  req.Name,
			Age:   req.Age,
			Email: req.Email,
		}

		if err := services.PassengerStore().Create(c.Request.Context(), passenger, req.Password); err != nil {
			if isUniqueViolation(err) {
				log.Warning("Duplicate passenger registration for %s", req.Email)
				c.JSON(http.StatusBadRequest, models.NewErrorResponse("passenger already exists"))
				return
			}
			log.Error("Failed to create passenger: %v", err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		token, err := services.TokenCodec().Encode(passenger)
		if err != nil {
			log.Error("Failed to generate token for passenger %d: %v", passenger.ID, err)
			c.JSON(http.StatusInternalServerError,
				models.NewErrorResponse(models.MsgTokenGenerationFailed))
			return
		}

		log.Info("Passenger %d created", passenger.ID)
		c.JSON(http.StatusCreated, models.NewSuccessResponse(models.PassengerTokenData{
			Passenger: passenger,
			Token:     token,
		}))
	}
}

// GetPassenger returns the addressed passenger after the ownership check
func GetPassenger(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		passenger, ok := authorizeOwner(c, services, id)
		if !ok {
			return
		}

		c.JSON(http.StatusOK, models.NewSuccessResponse(passenger))
	}
}

// UpdatePassenger replaces the addressed passenger record and re-issues a
// token carrying the updated claims
func UpdatePassenger(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithComponent("passengers")

		id, ok := pathID(c)
		if !ok {
			return
		}

		var req models.PassengerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				models.NewValidationErrorResponse(models.FieldErrorsFromBinding(err)))
			return
		}

		if _, ok := authorizeOwner(c, services, id); !ok {
			return
		}

		passenger := &database.Passenger{
			Name:  req.Name,
			Age:   req.Age,
			Email: req.Email,
		}

		if err := services.PassengerStore().Update(c.Request.Context(), id, passenger, req.Password); err != nil {
			log.Error("Failed to update passenger %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		token, err := services.TokenCodec().Encode(passenger)
		if err != nil {
			log.Error("Failed to generate token for passenger %d: %v", id, err)
			c.JSON(http.StatusInternalServerError,
				models.NewErrorResponse(models.MsgTokenGenerationFailed))
			return
		}

		log.Info("Passenger %d updated", id)
		c.JSON(http.StatusCreated, models.NewSuccessResponse(models.PassengerTokenData{
			Passenger: passenger,
			Token:     token,
		}))
	}
}

// DeletePassenger removes the addressed passenger after the ownership check
func DeletePassenger(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithComponent("passengers")

		id, ok := pathID(c)
		if !ok {
			return
		}

		if _, ok := authorizeOwner(c, services, id); !ok {
			return
		}

		if err := services.PassengerStore().Delete(c.Request.Context(), id); err != nil {
			log.Error("Failed to delete passenger %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		log.Info("Passenger %d deleted", id)
		c.Status(http.StatusNoContent)
	}
}

// pathID parses the :id path parameter, answering 400 on garbage
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewErrorResponse("invalid passenger id"))
		return 0, false
	}
	return id, true
}

// authorizeOwner runs the ownership guard for the authenticated identity
// against the path-addressed resource. The guard re-resolves the claims
// email to a live record on every call; stale embedded ids are never used.
func authorizeOwner(c *gin.Context, services interfaces.Services, id int64) (*database.Passenger, bool) {
	email := c.GetString(middlewares.ContextEmail)

	passenger, err := services.OwnershipGuard().Authorize(c.Request.Context(), email, id)
	if err != nil {
		status, message := models.StatusForAuthError(err)
		services.GetLogger().Warning("Authorization denied for %s on passenger %d: %v", email, id, err)
		c.JSON(status, models.NewErrorResponse(message))
		return nil, false
	}

	return passenger, true
}

// isUniqueViolation reports whether the error is a unique-constraint failure
// from either supported driver
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
