package api

import (
	"database/sql"

	"passenger-service/internal/api/interfaces"
	"passenger-service/internal/auth"
	"passenger-service/internal/database/repositories"
	"passenger-service/pkg/config"
	"passenger-service/pkg/logger"
)

// Services contains all the dependencies for API handlers
type Services struct {
	DB     *sql.DB
	Logger *logger.Logger
	Config *config.Config

	codec    *auth.Codec
	verifier *auth.Verifier
	guard    *auth.Guard

	passengerRepository   *repositories.PassengerRepository
	reservationRepository *repositories.ReservationRepository
}

// NewServices creates a new services container
func NewServices(db *sql.DB, log *logger.Logger, cfg *config.Config) *Services {
	services := &Services{
		DB:     db,
		Logger: log,
		Config: cfg,
	}

	services.passengerRepository = repositories.NewPassengerRepository(db)
	services.reservationRepository = repositories.NewReservationRepository(db)

	// The signing key is injected here once; the codec holds it immutably
	services.codec = auth.NewCodec(cfg.Security.JWTSecret, cfg.Security.JWTExpiration)
	services.verifier = auth.NewVerifier(services.passengerRepository, services.codec)
	services.guard = auth.NewGuard(services.passengerRepository)

	return services
}

// Interface implementation methods
func (s *Services) GetLogger() *logger.Logger {
	return s.Logger
}

func (s *Services) GetConfig() *config.Config {
	return s.Config
}

func (s *Services) TokenCodec() *auth.Codec {
	return s.codec
}

func (s *Services) LoginVerifier() *auth.Verifier {
	return s.verifier
}

func (s *Services) OwnershipGuard() *auth.Guard {
	return s.guard
}

func (s *Services) PassengerStore() interfaces.PassengerStore {
	return s.passengerRepository
}

func (s *Services) ReservationStore() interfaces.ReservationStore {
	return s.reservationRepository
}

// IsHealthy checks if all critical services are healthy
func (s *Services) IsHealthy() bool {
	if err := s.DB.Ping(); err != nil {
		s.Logger.Error("Database health check failed: %v", err)
		return false
	}
	return true
}
