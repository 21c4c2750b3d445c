package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhruvmish/Airline-Assistant/models"
)

func TestExtractFlightNumber(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("Flight AA123 status")
	assert.Equal(t, models.EntityBag{
		models.EntityFlightNumbers: {"AA123"},
	}, bag)
}

func TestExtractFlightNumberLowercaseInput(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("is flight ua456 on time")
	assert.Equal(t, []string{"UA456"}, bag[models.EntityFlightNumbers])
}

func TestExtractBookingReference(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("My booking reference is ABC123")
	assert.Equal(t, []string{"ABC123"}, bag[models.EntityBookingRefs])
	assert.NotContains(t, bag, models.EntityFlightNumbers)
	// "BOOKING" and "REFERENCE" carry no digits and must not match.
	assert.Len(t, bag[models.EntityBookingRefs], 1)
}

func TestExtractFlightNumberBeatsBookingReference(t *testing.T) {
	e := NewExtractor()

	// BK007 fits both shapes; the flight-number rule claims it first.
	bag := e.Extract("reference BK007")
	assert.Equal(t, []string{"BK007"}, bag[models.EntityFlightNumbers])
	assert.NotContains(t, bag, models.EntityBookingRefs)
}

func TestExtractRouteCities(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("flights from New York to Los Angeles")
	assert.Equal(t, []string{"New York", "Los Angeles"}, bag[models.EntityCities])
	assert.NotContains(t, bag, models.EntityAirportCodes)
}

func TestExtractRouteCitiesLowercase(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("flights from chicago to atlanta")
	assert.Equal(t, []string{"Chicago", "Atlanta"}, bag[models.EntityCities])
}

func TestExtractAirportCodes(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("flights leaving JFK this afternoon")
	assert.Equal(t, []string{"JFK"}, bag[models.EntityAirportCodes])
}

func TestExtractSingleCapitalizedCity(t *testing.T) {
	e := NewExtractor()

	bag := e.Extract("any flights into Chicago tonight")
	assert.Equal(t, []string{"Chicago"}, bag[models.EntityCities])
}

func TestExtractNothing(t *testing.T) {
	e := NewExtractor()

	assert.Empty(t, e.Extract("thanks"))
	assert.Empty(t, e.Extract(""))
}

func TestEntityBagFirstAndClone(t *testing.T) {
	bag := models.EntityBag{models.EntityCities: {"Chicago", "Atlanta"}}

	assert.Equal(t, "Chicago", bag.First(models.EntityCities))
	assert.Equal(t, "", bag.First(models.EntityFlightNumbers))

	clone := bag.Clone()
	clone[models.EntityCities][0] = "Dallas"
	assert.Equal(t, "Chicago", bag[models.EntityCities][0])
}
