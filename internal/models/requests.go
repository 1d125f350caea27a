package models

// RegisterRequest is the payload for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// CreateBookingRequest is the payload for POST /api/bookings.
// Pointers distinguish "absent" from zero so missing fields fail
// validation the same way the API always has.
type CreateBookingRequest struct {
	FlightID   *int64 `json:"flightId"`
	Passengers *int   `json:"passengers"`
}

// UpdateBookingRequest is the payload for PUT /api/bookings/:id.
// A nil Passengers leaves the booking unchanged.
type UpdateBookingRequest struct {
	Passengers *int `json:"passengers"`
}

// BookingResponse wraps a booking mutation result
type BookingResponse struct {
	Message string             `json:"message"`
	Booking *BookingWithFlight `json:"booking"`
}

// CancelBookingResponse wraps a cancellation result (no flight snapshot)
type CancelBookingResponse struct {
	Message string   `json:"message"`
	Booking *Booking `json:"booking"`
}
