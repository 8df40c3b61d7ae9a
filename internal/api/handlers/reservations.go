package handlers

import (
	"net/http"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/api/models"
	"passenger-service/internal/database"

	"github.com/gin-gonic/gin"
)

// ListReservations returns the addressed passenger's reservations after the
// ownership check
func ListReservations(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}

		if _, ok := authorizeOwner(c, services, id); !ok {
			return
		}

		reservations, err := services.ReservationStore().ListByPassenger(c.Request.Context(), id)
		if err != nil {
			services.GetLogger().Error("Failed to list reservations for passenger %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		c.JSON(http.StatusOK, models.NewSuccessResponse(reservations))
	}
}

// CreateReservation books a reservation for the addressed passenger after
// the ownership check
func CreateReservation(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := services.GetLogger().WithComponent("reservations")

		id, ok := pathID(c)
		if !ok {
			return
		}

		var req models.ReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest,
				models.NewValidationErrorResponse(models.FieldErrorsFromBinding(err)))
			return
		}

		if _, ok := authorizeOwner(c, services, id); !ok {
			return
		}

		reservation := &database.Reservation{
			PassengerID: id,
			ScheduledAt: req.ScheduledAt,
			Destination: req.Destination,
		}

		if err := services.ReservationStore().Create(c.Request.Context(), reservation); err != nil {
			log.Error("Failed to create reservation for passenger %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, models.NewErrorResponse("Internal server error"))
			return
		}

		log.Info("Reservation %d created for passenger %d", reservation.ID, id)
		c.JSON(http.StatusCreated, models.NewSuccessResponse(reservation))
	}
}
