package repository

import "volair/internal/models"

// SeedCatalog loads the deployment's fixed flight catalog. The seat
// counts recorded here are each flight's implicit capacity: no separate
// original-capacity field is kept anywhere.
func (s *Store) SeedCatalog() {
	flights := []models.Flight{
		{ID: 1, FlightNumber: "VL001", Origin: "Barcelona", Destination: "Madrid", DepartureDate: "2024-06-15", DepartureTime: "08:00", ArrivalTime: "09:15", Price: 89.99, AvailableSeats: 120, Airline: "Vueling"},
		{ID: 2, FlightNumber: "IB234", Origin: "Barcelona", Destination: "París", DepartureDate: "2024-06-15", DepartureTime: "10:30", ArrivalTime: "12:45", Price: 149.99, AvailableSeats: 85, Airline: "Iberia"},
		{ID: 3, FlightNumber: "RY456", Origin: "Barcelona", Destination: "Londres", DepartureDate: "2024-06-16", DepartureTime: "14:00", ArrivalTime: "15:30", Price: 79.99, AvailableSeats: 150, Airline: "Ryanair"},
		{ID: 4, FlightNumber: "VL002", Origin: "Madrid", Destination: "Barcelona", DepartureDate: "2024-06-17", DepartureTime: "18:00", ArrivalTime: "19:15", Price: 95.99, AvailableSeats: 100, Airline: "Vueling"},
		{ID: 5, FlightNumber: "IB789", Origin: "Barcelona", Destination: "Roma", DepartureDate: "2024-06-18", DepartureTime: "07:00", ArrivalTime: "09:00", Price: 129.99, AvailableSeats: 90, Airline: "Iberia"},
		{ID: 6, FlightNumber: "AF123", Origin: "Barcelona", Destination: "Amsterdam", DepartureDate: "2024-06-19", DepartureTime: "11:00", ArrivalTime: "14:00", Price: 169.99, AvailableSeats: 75, Airline: "Air France"},
	}

	for _, f := range flights {
		s.AddFlight(f)
	}
}
