package service

import (
	"volair/internal/auth"
	"volair/internal/messaging"
	"volair/internal/repository"
)

// Services bundles the application services
type Services struct {
	Users    *UserService
	Flights  *FlightService
	Bookings *BookingService
}

func NewServices(repos *repository.Repositories, tokens *auth.TokenManager, authCfg auth.Config, natsClient *messaging.NATSClient) *Services {
	return &Services{
		Users:    NewUserService(repos.Users, tokens, authCfg, natsClient),
		Flights:  NewFlightService(repos.Flights),
		Bookings: NewBookingService(repos.Bookings, repos.Flights, natsClient),
	}
}
