package repositories

import (
	"context"
	"database/sql"
	"errors"

	"passenger-service/internal/database"

	"golang.org/x/crypto/bcrypt"
)

type PassengerRepository struct {
	db *sql.DB
}

func NewPassengerRepository(db *sql.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// Create persists a new passenger, hashing the supplied plaintext password.
func (r *PassengerRepository) Create(ctx context.Context, passenger *database.Passenger, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passenger.PasswordHash = string(hash)

	query := `
        INSERT INTO passengers (name, age, email, password_hash)
        VALUES (?, ?, ?, ?)
    `
	result, err := r.db.ExecContext(ctx, query, passenger.Name, passenger.Age,
		passenger.Email, passenger.PasswordHash)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	passenger.ID = id
	return nil
}

// GetByID retrieves a passenger by ID
func (r *PassengerRepository) GetByID(ctx context.Context, id int64) (*database.Passenger, error) {
	query := `
        SELECT id, name, age, email, password_hash, created_at, updated_at
        FROM passengers
        WHERE id = ?
    `

	var passenger database.Passenger
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&passenger.ID, &passenger.Name, &passenger.Age, &passenger.Email,
		&passenger.PasswordHash, &passenger.CreatedAt, &passenger.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &passenger, nil
}

// GetByEmail retrieves a passenger by email
func (r *PassengerRepository) GetByEmail(ctx context.Context, email string) (*database.Passenger, error) {
	query := `
        SELECT id, name, age, email, password_hash, created_at, updated_at
        FROM passengers
        WHERE email = ?
    `

	var passenger database.Passenger
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&passenger.ID, &passenger.Name, &passenger.Age, &passenger.Email,
		&passenger.PasswordHash, &passenger.CreatedAt, &passenger.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &passenger, nil
}

// List retrieves all passengers ordered by creation time
func (r *PassengerRepository) List(ctx context.Context) ([]database.Passenger, error) {
	query := `
        SELECT id, name, age, email, password_hash, created_at, updated_at
        FROM passengers
        ORDER BY created_at DESC
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := []database.Passenger{}
	for rows.Next() {
		var passenger database.Passenger
		err := rows.Scan(
			&passenger.ID, &passenger.Name, &passenger.Age, &passenger.Email,
			&passenger.PasswordHash, &passenger.CreatedAt, &passenger.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		passengers = append(passengers, passenger)
	}

	return passengers, rows.Err()
}

// Update replaces a passenger record, rehashing the supplied plaintext password.
func (r *PassengerRepository) Update(ctx context.Context, id int64, passenger *database.Passenger, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	passenger.PasswordHash = string(hash)

	query := `
        UPDATE passengers
        SET name = ?, age = ?, email = ?, password_hash = ?, updated_at = CURRENT_TIMESTAMP
        WHERE id = ?
    `
	_, err = r.db.ExecContext(ctx, query, passenger.Name, passenger.Age,
		passenger.Email, passenger.PasswordHash, id)
	if err != nil {
		return err
	}

	passenger.ID = id
	return nil
}

// Delete removes a passenger record
func (r *PassengerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM passengers WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// VerifyPassword compares a plaintext password against the stored hash
func (r *PassengerRepository) VerifyPassword(passenger *database.Passenger, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passenger.PasswordHash), []byte(password)) == nil
}
