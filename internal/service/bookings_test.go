package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "volair/internal/errors"
	"volair/internal/models"
	"volair/internal/repository"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }

func newBookingFixture(t *testing.T, flights ...models.Flight) (*BookingService, *repository.Repositories) {
	t.Helper()

	store := repository.NewStore()
	if len(flights) == 0 {
		flights = []models.Flight{
			{ID: 1, FlightNumber: "VL100", Origin: "Barcelona", Destination: "Madrid", DepartureDate: "2024-06-15", Price: 100, AvailableSeats: 5, Airline: "Vueling"},
		}
	}
	for _, f := range flights {
		store.AddFlight(f)
	}

	repos := repository.NewRepositories(store)
	return NewBookingService(repos.Bookings, repos.Flights, nil), repos
}

func createReq(flightID int64, passengers int) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{FlightID: int64Ptr(flightID), Passengers: intPtr(passengers)}
}

func TestCreateBooking(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 7, createReq(1, 3))
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, int64(7), booking.UserID)
	assert.Equal(t, int64(1), booking.FlightID)
	assert.Equal(t, 3, booking.Passengers)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.False(t, booking.CreatedAt.IsZero())

	require.NotNil(t, booking.Flight)
	assert.Equal(t, 2, booking.Flight.AvailableSeats)

	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, flight.AvailableSeats)
}

func TestCreateBookingIDsAreMonotonic(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, createReq(1, 1))
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, createReq(1, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	// Cancelling never frees an id for reuse
	_, err = svc.Cancel(ctx, 1, second.ID)
	require.NoError(t, err)
	third, err := svc.Create(ctx, 1, createReq(1, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.CreateBookingRequest
	}{
		{"missing flight id", &models.CreateBookingRequest{Passengers: intPtr(2)}},
		{"missing passengers", &models.CreateBookingRequest{FlightID: int64Ptr(1)}},
		{"zero flight id", createReq(0, 2)},
		{"zero passengers", createReq(1, 0)},
		{"too many passengers", createReq(1, 10)},
		{"negative passengers", createReq(1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, 1, tt.req)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestCreateBookingRangeCheckedBeforeFlightLookup(t *testing.T) {
	svc, _ := newBookingFixture(t)

	// Unknown flight id with out-of-range passengers must still fail
	// validation, not NotFound
	_, err := svc.Create(context.Background(), 1, createReq(999, 10))
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateBookingFlightNotFound(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Create(context.Background(), 1, createReq(999, 2))
	assert.ErrorIs(t, err, apperrors.ErrFlightNotFound)
}

func TestCreateBookingInsufficientCapacity(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, createReq(1, 6))
	var capErr *apperrors.CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 5, capErr.AvailableSeats)

	// A rejected create must not touch the seat counter
	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, flight.AvailableSeats)
}

func TestModifyBookingIncreaseToCeiling(t *testing.T) {
	// Flight with 5 seats at price 100: book 3, then grow the booking to
	// all 5 seats while only 2 remain free. The 3 already held count
	// toward the ceiling, so this succeeds.
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 300.0, booking.TotalPrice)

	updated, err := svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Passengers)
	assert.Equal(t, 500.0, updated.TotalPrice)
	assert.Equal(t, 0, updated.Flight.AvailableSeats)

	cancelled, err := svc.Cancel(ctx, 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, flight.AvailableSeats)
}

func TestModifyBookingBeyondCeiling(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 3))
	require.NoError(t, err)

	_, err = svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(6)})
	var capErr *apperrors.CapacityError
	require.True(t, errors.As(err, &capErr))
	// Reported ceiling is free seats plus the seats this booking holds
	assert.Equal(t, 5, capErr.AvailableSeats)

	// Failed modify leaves everything untouched
	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, flight.AvailableSeats)

	current, err := svc.GetByID(ctx, 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, current.Passengers)
	assert.Equal(t, 300.0, current.TotalPrice)
}

func TestModifyBookingDecreaseRestoresSeats(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 4))
	require.NoError(t, err)
	assert.Equal(t, 1, booking.Flight.AvailableSeats)

	updated, err := svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Passengers)
	assert.Equal(t, 100.0, updated.TotalPrice)
	assert.Equal(t, 4, updated.Flight.AvailableSeats)
}

func TestModifyBookingWithoutPassengersIsNoOp(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)

	updated, err := svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Passengers)
	assert.Equal(t, 200.0, updated.TotalPrice)
	require.NotNil(t, updated.Flight)
	assert.Equal(t, 3, updated.Flight.AvailableSeats)
}

func TestModifyBookingValidation(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)

	for _, passengers := range []int{0, -1, 10} {
		_, err := svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(passengers)})
		assert.True(t, apperrors.IsValidation(err), "passengers=%d", passengers)
	}
}

func TestModifyBookingOwnership(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)

	_, err = svc.Modify(ctx, 2, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(3)})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestModifyBookingNotFound(t *testing.T) {
	svc, _ := newBookingFixture(t)

	_, err := svc.Modify(context.Background(), 1, 42, &models.UpdateBookingRequest{Passengers: intPtr(3)})
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)
}

func TestModifyCancelledBooking(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, 1, booking.ID)
	require.NoError(t, err)

	_, err = svc.Modify(ctx, 1, booking.ID, &models.UpdateBookingRequest{Passengers: intPtr(3)})
	assert.ErrorIs(t, err, apperrors.ErrBookingCancelled)
}

func TestCancelBooking(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 3))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, 3, cancelled.Passengers)

	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, flight.AvailableSeats)
}

func TestCancelBookingTwice(t *testing.T) {
	svc, repos := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 3))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, 1, booking.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, 1, booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyCancelled)

	// Seats must not be refunded a second time
	flight, err := repos.Flights.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, flight.AvailableSeats)
}

func TestCancelBookingOwnership(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, 2, booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestGetBookingOwnership(t *testing.T) {
	svc, _ := newBookingFixture(t)
	ctx := context.Background()

	booking, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, 2, booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.GetByID(ctx, 1, 42)
	assert.ErrorIs(t, err, apperrors.ErrBookingNotFound)

	got, err := svc.GetByID(ctx, 1, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
	require.NotNil(t, got.Flight)
}

func TestListForUser(t *testing.T) {
	svc, _ := newBookingFixture(t, models.Flight{ID: 1, FlightNumber: "VL100", Price: 100, AvailableSeats: 50})
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, createReq(1, 2))
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, createReq(1, 1))
	require.NoError(t, err)
	second, err := svc.Create(ctx, 1, createReq(1, 3))
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, 1, second.ID)
	require.NoError(t, err)

	bookings, err := svc.ListForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Insertion order, cancelled bookings included
	assert.Equal(t, first.ID, bookings[0].ID)
	assert.Equal(t, models.BookingStatusConfirmed, bookings[0].Status)
	assert.Equal(t, second.ID, bookings[1].ID)
	assert.Equal(t, models.BookingStatusCancelled, bookings[1].Status)

	require.NotNil(t, bookings[0].Flight)
	assert.Equal(t, "VL100", bookings[0].Flight.FlightNumber)
}

// activeSeats sums the passengers of non-cancelled bookings on a flight
func activeSeats(t *testing.T, svc *BookingService, userIDs []int64, flightID int64) int {
	t.Helper()
	total := 0
	for _, uid := range userIDs {
		bookings, err := svc.ListForUser(context.Background(), uid)
		require.NoError(t, err)
		for _, b := range bookings {
			if b.FlightID == flightID && b.Status != models.BookingStatusCancelled {
				total += b.Passengers
			}
		}
	}
	return total
}

func TestSeatConservationAcrossOperations(t *testing.T) {
	// availableSeats + seats held by active bookings must equal the
	// flight's capacity after every operation, successful or not
	const capacity = 12
	svc, repos := newBookingFixture(t, models.Flight{ID: 1, FlightNumber: "VL100", Price: 10, AvailableSeats: capacity})
	ctx := context.Background()
	users := []int64{1, 2, 3}

	check := func(step string) {
		flight, err := repos.Flights.GetByID(ctx, 1)
		require.NoError(t, err)
		held := activeSeats(t, svc, users, 1)
		assert.Equal(t, capacity, flight.AvailableSeats+held, "after %s", step)
		assert.GreaterOrEqual(t, flight.AvailableSeats, 0, "after %s", step)
	}

	b1, err := svc.Create(ctx, 1, createReq(1, 4))
	require.NoError(t, err)
	check("create b1")

	b2, err := svc.Create(ctx, 2, createReq(1, 5))
	require.NoError(t, err)
	check("create b2")

	_, err = svc.Create(ctx, 3, createReq(1, 4))
	require.Error(t, err) // only 3 left
	check("rejected create")

	_, err = svc.Modify(ctx, 1, b1.ID, &models.UpdateBookingRequest{Passengers: intPtr(7)})
	require.NoError(t, err)
	check("grow b1")

	_, err = svc.Modify(ctx, 2, b2.ID, &models.UpdateBookingRequest{Passengers: intPtr(1)})
	require.NoError(t, err)
	check("shrink b2")

	_, err = svc.Cancel(ctx, 1, b1.ID)
	require.NoError(t, err)
	check("cancel b1")

	_, err = svc.Create(ctx, 3, createReq(1, 9))
	require.NoError(t, err)
	check("create b3")
}
