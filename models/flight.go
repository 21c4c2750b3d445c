package models

// Airline is one carrier in the backup dataset.
type Airline struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
}

// Airport is one airport in the backup dataset.
type Airport struct {
	Name     string `json:"name"`
	IATACode string `json:"iata_code"`
	City     string `json:"city"`
}

// FlightEndpoint is one side of a flight (departure or arrival).
type FlightEndpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time"`
}

// Flight is a formatted flight record, from the live API or backup data.
type Flight struct {
	FlightNumber string         `json:"flight_number"`
	Airline      string         `json:"airline"`
	Departure    FlightEndpoint `json:"departure"`
	Arrival      FlightEndpoint `json:"arrival"`
	Status       string         `json:"status"`
	Aircraft     string         `json:"aircraft,omitempty"`
}

// Booking is one reservation in the mock booking system.
type Booking struct {
	BookingID     string `json:"booking_id"`
	PassengerName string `json:"passenger_name"`
	FlightNumber  string `json:"flight_number"`
	Departure     string `json:"departure"`
	Arrival       string `json:"arrival"`
	Date          string `json:"date"`
	Seat          string `json:"seat"`
	Status        string `json:"status"`
}
