package repositories

import (
	"context"
	"database/sql"

	"passenger-service/internal/database"
)

type ReservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create persists a new reservation for a passenger
func (r *ReservationRepository) Create(ctx context.Context, reservation *database.Reservation) error {
	query := `
        INSERT INTO reservations (passenger_id, scheduled_at, destination)
        VALUES (?, ?, ?)
    `
	result, err := r.db.ExecContext(ctx, query, reservation.PassengerID,
		reservation.ScheduledAt, reservation.Destination)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	reservation.ID = id
	return nil
}

// ListByPassenger retrieves all reservations owned by a passenger
func (r *ReservationRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]database.Reservation, error) {
	query := `
        SELECT id, passenger_id, scheduled_at, destination, created_at
        FROM reservations
        WHERE passenger_id = ?
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []database.Reservation{}
	for rows.Next() {
		var reservation database.Reservation
		err := rows.Scan(
			&reservation.ID, &reservation.PassengerID,
			&reservation.ScheduledAt, &reservation.Destination, &reservation.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}

	return reservations, rows.Err()
}
