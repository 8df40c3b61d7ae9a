package interfaces

import (
	"passenger-service/internal/auth"
	"passenger-service/pkg/config"
	"passenger-service/pkg/logger"
)

// Services exposes the dependencies handlers and middleware consume
type Services interface {
	GetLogger() *logger.Logger
	GetConfig() *config.Config
	TokenCodec() *auth.Codec
	LoginVerifier() *auth.Verifier
	OwnershipGuard() *auth.Guard
	PassengerStore() PassengerStore
	ReservationStore() ReservationStore
	IsHealthy() bool
}
