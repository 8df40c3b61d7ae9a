package interfaces

import (
	"context"

	"passenger-service/internal/auth"
	"passenger-service/internal/database"
)

// PassengerStore is the persistence surface for passenger records. It
// includes the identity-resolution and password-verification capabilities
// the auth subsystem consumes.
type PassengerStore interface {
	auth.IdentityStore
	Create(ctx context.Context, passenger *database.Passenger, password string) error
	GetByID(ctx context.Context, id int64) (*database.Passenger, error)
	List(ctx context.Context) ([]database.Passenger, error)
	Update(ctx context.Context, id int64, passenger *database.Passenger, password string) error
	Delete(ctx context.Context, id int64) error
}

// ReservationStore is the persistence surface for reservations
type ReservationStore interface {
	Create(ctx context.Context, reservation *database.Reservation) error
	ListByPassenger(ctx context.Context, passengerID int64) ([]database.Reservation, error)
}
