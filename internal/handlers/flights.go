package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "volair/internal/errors"
	"volair/internal/repository"
)

// ListFlights - GET /api/flights
// Catalog reads are unauthenticated; filters are AND-combined.
func (h *Handlers) ListFlights(c *gin.Context) {
	filter := repository.FlightFilter{
		Origin:      c.Query("origin"),
		Destination: c.Query("destination"),
		Date:        c.Query("date"),
	}

	flights, err := h.services.Flights.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, flights)
}

// GetFlight - GET /api/flights/:id
func (h *Handlers) GetFlight(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, apperrors.ErrFlightNotFound)
		return
	}

	flight, err := h.services.Flights.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, flight)
}

// FlightSearchIndex dispatches GET /api/flights/search/origins and
// GET /api/flights/search/destinations. gin's tree cannot register the
// static "search" prefix next to the ":id" parameter, so both
// distinct-value listings are routed through /:id/:field.
func (h *Handlers) FlightSearchIndex(c *gin.Context) {
	if c.Param("id") == "search" {
		switch c.Param("field") {
		case "origins":
			h.ListOrigins(c)
			return
		case "destinations":
			h.ListDestinations(c)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

// ListOrigins - GET /api/flights/search/origins
func (h *Handlers) ListOrigins(c *gin.Context) {
	origins, err := h.services.Flights.Origins(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, origins)
}

// ListDestinations - GET /api/flights/search/destinations
func (h *Handlers) ListDestinations(c *gin.Context) {
	destinations, err := h.services.Flights.Destinations(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, destinations)
}
