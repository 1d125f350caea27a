package repository

// Repositories bundles the typed accessors over the shared store
type Repositories struct {
	Users    *UserRepository
	Flights  *FlightRepository
	Bookings *BookingRepository
}

func NewRepositories(store *Store) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(store),
		Flights:  NewFlightRepository(store),
		Bookings: NewBookingRepository(store),
	}
}
