package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBookingIsCaseInsensitive(t *testing.T) {
	svc := NewBookingService()

	booking, ok := svc.FindBooking("abc123")
	require.True(t, ok)
	assert.Equal(t, "ABC123", booking.BookingID)
	assert.Equal(t, "John Smith", booking.PassengerName)
	assert.Equal(t, "AA123", booking.FlightNumber)
}

func TestFindBookingUnknownReference(t *testing.T) {
	svc := NewBookingService()

	_, ok := svc.FindBooking("ZZZ999")
	assert.False(t, ok)
}

func TestSearchByNameMatchesSubstrings(t *testing.T) {
	svc := NewBookingService()

	// "john" matches both John Smith and Bob Johnson.
	results := svc.SearchByName("john")
	require.Len(t, results, 2)
	assert.Equal(t, "ABC123", results[0].BookingID)
	assert.Equal(t, "GHI789", results[1].BookingID)

	assert.Empty(t, svc.SearchByName("nobody"))
}

func TestCreateBooking(t *testing.T) {
	svc := NewBookingService()

	booking := svc.CreateBooking("Alice Chen", "AA123", "New York (JFK)", "Los Angeles (LAX)", "2026-10-01", "14D")
	assert.Equal(t, "BK004", booking.BookingID)
	assert.Equal(t, "Confirmed", booking.Status)

	found, ok := svc.FindBooking(booking.BookingID)
	require.True(t, ok)
	assert.Equal(t, "Alice Chen", found.PassengerName)
}
