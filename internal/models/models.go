package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// PublicProfile returns the user representation exposed by the API
// (never includes the credential hash)
func (u *User) PublicProfile() UserProfile {
	return UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// UserProfile is the API-facing view of a user
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Flight represents a flight offer in the catalog.
// AvailableSeats is the only mutable field and is adjusted exclusively
// by the booking service.
type Flight struct {
	ID             int64   `json:"id"`
	FlightNumber   string  `json:"flightNumber"`
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureDate  string  `json:"departureDate"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
	Airline        string  `json:"airline"`
}

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	// BookingStatusPending is reserved in the schema but no operation
	// currently produces it
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation against a flight. Cancelled bookings
// are retained, never deleted.
type Booking struct {
	ID         int64         `json:"id"`
	UserID     int64         `json:"userId"`
	FlightID   int64         `json:"flightId"`
	Passengers int           `json:"passengers"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// BookingWithFlight is the composite returned by booking queries: the
// booking joined with a snapshot of its flight
type BookingWithFlight struct {
	Booking
	Flight *Flight `json:"flight"`
}
