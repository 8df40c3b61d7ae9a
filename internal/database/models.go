package database

import (
	"errors"
	"time"
)

// Passenger represents a registered passenger account
type Passenger struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Age          int       `db:"age" json:"age"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // Never include in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Reservation represents a trip reservation owned by a passenger
type Reservation struct {
	ID          int64     `db:"id" json:"id"`
	PassengerID int64     `db:"passenger_id" json:"passenger_id"`
	ScheduledAt string    `db:"scheduled_at" json:"scheduled_at"`
	Destination string    `db:"destination" json:"destination"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ErrNotFound is returned by repositories when no row matches the lookup.
var ErrNotFound = errors.New("record not found")
