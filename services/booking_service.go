package services

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// BookingService is an in-memory booking system preloaded with demo
// reservations. Mutations are mutex-guarded for concurrent chat sessions.
type BookingService struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

func NewBookingService() *BookingService {
	return &BookingService{
		bookings: map[string]models.Booking{
			"ABC123": {
				BookingID: "ABC123", PassengerName: "John Smith", FlightNumber: "AA123",
				Departure: "New York (JFK)", Arrival: "Los Angeles (LAX)",
				Date: "2024-09-15", Seat: "12A", Status: "Confirmed",
			},
			"DEF456": {
				BookingID: "DEF456", PassengerName: "Jane Doe", FlightNumber: "UA456",
				Departure: "Chicago (ORD)", Arrival: "Atlanta (ATL)",
				Date: "2024-09-16", Seat: "8B", Status: "Confirmed",
			},
			"GHI789": {
				BookingID: "GHI789", PassengerName: "Bob Johnson", FlightNumber: "DL789",
				Departure: "Atlanta (ATL)", Arrival: "New York (JFK)",
				Date: "2024-09-17", Seat: "15C", Status: "Pending",
			},
		},
	}
}

// FindBooking looks up a booking by its reference, case-insensitively.
func (s *BookingService) FindBooking(bookingID string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[strings.ToUpper(bookingID)]
	return booking, ok
}

// SearchByName finds all bookings whose passenger name contains the query.
func (s *BookingService) SearchByName(passengerName string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []models.Booking
	for _, booking := range s.bookings {
		if strings.Contains(strings.ToLower(booking.PassengerName), strings.ToLower(passengerName)) {
			results = append(results, booking)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].BookingID < results[j].BookingID
	})
	return results
}

// CreateBooking registers a new confirmed booking and returns it.
func (s *BookingService) CreateBooking(passengerName, flightNumber, departure, arrival, date, seat string) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking := models.Booking{
		BookingID:     fmt.Sprintf("BK%03d", len(s.bookings)+1),
		PassengerName: passengerName,
		FlightNumber:  flightNumber,
		Departure:     departure,
		Arrival:       arrival,
		Date:          date,
		Seat:          seat,
		Status:        "Confirmed",
	}
	s.bookings[booking.BookingID] = booking
	return booking
}
