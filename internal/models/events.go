package models

import "time"

// NATS Event Subjects
const (
	EventUserRegistered   = "user.registered"
	EventBookingCreated   = "booking.created"
	EventBookingModified  = "booking.modified"
	EventBookingCancelled = "booking.cancelled"
)

// UserRegisteredEvent represents a new account registration
type UserRegisteredEvent struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// BookingCreatedEvent represents a booking creation
type BookingCreatedEvent struct {
	BookingID  int64     `json:"booking_id"`
	FlightID   int64     `json:"flight_id"`
	UserID     int64     `json:"user_id"`
	Passengers int       `json:"passengers"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// BookingModifiedEvent represents a passenger-count change
type BookingModifiedEvent struct {
	BookingID     int64     `json:"booking_id"`
	FlightID      int64     `json:"flight_id"`
	UserID        int64     `json:"user_id"`
	OldPassengers int       `json:"old_passengers"`
	NewPassengers int       `json:"new_passengers"`
	TotalPrice    float64   `json:"total_price"`
	Timestamp     time.Time `json:"timestamp"`
}

// BookingCancelledEvent represents a booking cancellation
type BookingCancelledEvent struct {
	BookingID     int64     `json:"booking_id"`
	FlightID      int64     `json:"flight_id"`
	UserID        int64     `json:"user_id"`
	SeatsReleased int       `json:"seats_released"`
	Timestamp     time.Time `json:"timestamp"`
}
