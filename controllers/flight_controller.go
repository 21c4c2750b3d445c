package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhruvmish/Airline-Assistant/services"
)

type FlightController struct {
	airlineService *services.AirlineService
	bookingService *services.BookingService
}

func NewFlightController(airlineService *services.AirlineService, bookingService *services.BookingService) *FlightController {
	return &FlightController{
		airlineService: airlineService,
		bookingService: bookingService,
	}
}

// GetFlightStatus looks up a single flight by number.
func (fc *FlightController) GetFlightStatus(c *gin.Context) {
	flightNumber := c.Param("number")

	flight := fc.airlineService.GetFlightStatus(flightNumber)
	if flight == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found", "flight_number": flightNumber})
		return
	}
	c.JSON(http.StatusOK, flight)
}

// SearchFlights finds flights between two cities or airport codes.
func (fc *FlightController) SearchFlights(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query parameters are required"})
		return
	}

	flights := fc.airlineService.SearchRoutes(from, to)
	c.JSON(http.StatusOK, gin.H{
		"flights": flights,
		"count":   len(flights),
	})
}

// GetDestinations lists popular destination cities.
func (fc *FlightController) GetDestinations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"destinations": fc.airlineService.PopularDestinations(),
	})
}

// GetBooking looks up a booking by reference.
func (fc *FlightController) GetBooking(c *gin.Context) {
	ref := c.Param("id")

	booking, ok := fc.bookingService.FindBooking(ref)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found", "booking_id": ref})
		return
	}
	c.JSON(http.StatusOK, booking)
}

// SearchBookings finds bookings by passenger name.
func (fc *FlightController) SearchBookings(c *gin.Context) {
	passenger := c.Query("passenger")
	if passenger == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passenger query parameter is required"})
		return
	}

	bookings := fc.bookingService.SearchByName(passenger)
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
