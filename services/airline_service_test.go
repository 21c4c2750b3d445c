package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBackupAirlineService has no API key, so every lookup uses the static
// backup dataset without touching the network.
func newBackupAirlineService() *AirlineService {
	return NewAirlineService("", "http://api.invalid/v1/flights", time.Second)
}

func TestGetFlightStatusFromBackupData(t *testing.T) {
	svc := newBackupAirlineService()

	flight := svc.GetFlightStatus("AA123")
	require.NotNil(t, flight)
	assert.Equal(t, "American Airlines", flight.Airline)
	assert.Equal(t, "JFK", flight.Departure.Airport)
	assert.Equal(t, "LAX", flight.Arrival.Airport)
	assert.Equal(t, "On Time", flight.Status)
}

func TestGetFlightStatusIgnoresCase(t *testing.T) {
	svc := newBackupAirlineService()

	flight := svc.GetFlightStatus("ua456")
	require.NotNil(t, flight)
	assert.Equal(t, "UA456", flight.FlightNumber)
	assert.Equal(t, "Delayed", flight.Status)
}

func TestGetFlightStatusUnknownFlight(t *testing.T) {
	svc := newBackupAirlineService()

	assert.Nil(t, svc.GetFlightStatus("ZZ999"))
	assert.Nil(t, svc.GetFlightStatus(""))
}

func TestSearchRoutesByCity(t *testing.T) {
	svc := newBackupAirlineService()

	flights := svc.SearchRoutes("New York", "Los Angeles")
	require.Len(t, flights, 1)
	assert.Equal(t, "AA123", flights[0].FlightNumber)

	assert.Empty(t, svc.SearchRoutes("Dallas", "Chicago"))
}

func TestSearchRoutesByAirportCode(t *testing.T) {
	svc := newBackupAirlineService()

	flights := svc.SearchRoutes("ORD", "ATL")
	require.Len(t, flights, 1)
	assert.Equal(t, "UA456", flights[0].FlightNumber)
}

func TestGetAirportCode(t *testing.T) {
	svc := newBackupAirlineService()

	assert.Equal(t, "JFK", svc.GetAirportCode("JFK"))
	assert.Equal(t, "JFK", svc.GetAirportCode("New York"))
	assert.Equal(t, "LHR", svc.GetAirportCode("london"))
	assert.Equal(t, "ORD", svc.GetAirportCode("Chicago"))
	// Unknown input falls through uppercased.
	assert.Equal(t, "SPRINGFIELD", svc.GetAirportCode("Springfield"))
	assert.Equal(t, "N/A", svc.GetAirportCode(""))
}

func TestPopularDestinations(t *testing.T) {
	svc := newBackupAirlineService()

	cities := svc.PopularDestinations()
	assert.Contains(t, cities, "New York")
	assert.Contains(t, cities, "Atlanta")
	assert.Len(t, cities, 5)
}

func TestTitleStatus(t *testing.T) {
	assert.Equal(t, "On Time", titleStatus("on_time"))
	assert.Equal(t, "Active", titleStatus("active"))
	assert.Equal(t, "Unknown", titleStatus(""))
}
