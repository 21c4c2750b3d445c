package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dhruvmish/Airline-Assistant/models"
)

// cityToIATA resolves well-known city names to their main airport code.
var cityToIATA = map[string]string{
	"new york":    "JFK",
	"los angeles": "LAX",
	"chicago":     "ORD",
	"atlanta":     "ATL",
	"dallas":      "DFW",
	"london":      "LHR",
	"manchester":  "MAN",
	"edinburgh":   "EDI",
	"paris":       "CDG",
	"nice":        "NCE",
	"lyon":        "LYS",
	"frankfurt":   "FRA",
	"munich":      "MUC",
	"berlin":      "BER",
	"amsterdam":   "AMS",
	"madrid":      "MAD",
	"barcelona":   "BCN",
	"rome":        "FCO",
	"milan":       "MXP",
	"zurich":      "ZRH",
	"moscow":      "SVO",
	"beijing":     "PEK",
	"shanghai":    "PVG",
	"hong kong":   "HKG",
	"tokyo":       "HND",
	"osaka":       "KIX",
	"seoul":       "ICN",
	"singapore":   "SIN",
	"dubai":       "DXB",
	"doha":        "DOH",
	"istanbul":    "IST",
	"delhi":       "DEL",
	"mumbai":      "BOM",
	"bangalore":   "BLR",
	"sydney":      "SYD",
	"melbourne":   "MEL",
	"sao paulo":   "GRU",
	"toronto":     "YYZ",
	"vancouver":   "YVR",
	"montreal":    "YUL",
}

type backupData struct {
	Airlines      []models.Airline
	Airports      []models.Airport
	SampleFlights []models.Flight
}

func loadBackupData() backupData {
	return backupData{
		Airlines: []models.Airline{
			{Name: "American Airlines", IATACode: "AA"},
			{Name: "United Airlines", IATACode: "UA"},
			{Name: "Delta Air Lines", IATACode: "DL"},
		},
		Airports: []models.Airport{
			{Name: "John F. Kennedy International", IATACode: "JFK", City: "New York"},
			{Name: "Los Angeles International", IATACode: "LAX", City: "Los Angeles"},
			{Name: "Chicago O'Hare International", IATACode: "ORD", City: "Chicago"},
			{Name: "Hartsfield-Jackson Atlanta International", IATACode: "ATL", City: "Atlanta"},
			{Name: "Dallas/Fort Worth International", IATACode: "DFW", City: "Dallas"},
		},
		SampleFlights: []models.Flight{
			{
				FlightNumber: "AA123", Airline: "American Airlines",
				Departure: models.FlightEndpoint{Airport: "JFK", City: "New York", Time: "08:00"},
				Arrival:   models.FlightEndpoint{Airport: "LAX", City: "Los Angeles", Time: "11:30"},
				Status:    "On Time", Aircraft: "Boeing 737-800",
			},
			{
				FlightNumber: "UA456", Airline: "United Airlines",
				Departure: models.FlightEndpoint{Airport: "ORD", City: "Chicago", Time: "14:20"},
				Arrival:   models.FlightEndpoint{Airport: "ATL", City: "Atlanta", Time: "17:45"},
				Status:    "Delayed", Aircraft: "Airbus A320",
			},
			{
				FlightNumber: "DL789", Airline: "Delta Air Lines",
				Departure: models.FlightEndpoint{Airport: "ATL", City: "Atlanta", Time: "09:15"},
				Arrival:   models.FlightEndpoint{Airport: "JFK", City: "New York", Time: "12:30"},
				Status:    "On Time", Aircraft: "Boeing 757-200",
			},
		},
	}
}

// AirlineService answers flight queries from the AviationStack live API
// when a key is configured, falling back to a static backup dataset.
type AirlineService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	backup     backupData
	// IATA -> city, built from the backup airport list.
	airportCityMap map[string]string
}

func NewAirlineService(apiKey, baseURL string, timeout time.Duration) *AirlineService {
	backup := loadBackupData()
	cityMap := make(map[string]string, len(backup.Airports))
	for _, airport := range backup.Airports {
		cityMap[airport.IATACode] = airport.City
	}
	return &AirlineService{
		apiKey:         apiKey,
		baseURL:        baseURL,
		httpClient:     &http.Client{Timeout: timeout},
		backup:         backup,
		airportCityMap: cityMap,
	}
}

// aviationStack response shapes; only the fields we read.
type apiResponse struct {
	Error *struct {
		Info string `json:"info"`
	} `json:"error,omitempty"`
	Data []apiFlight `json:"data"`
}

type apiFlight struct {
	FlightStatus string      `json:"flight_status"`
	Departure    apiEndpoint `json:"departure"`
	Arrival      apiEndpoint `json:"arrival"`
	Airline      struct {
		Name string `json:"name"`
	} `json:"airline"`
	Flight struct {
		IATA string `json:"iata"`
	} `json:"flight"`
	Aircraft *struct {
		Registration string `json:"registration"`
	} `json:"aircraft"`
}

type apiEndpoint struct {
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
}

func (s *AirlineService) makeAPIRequest(params url.Values) (*apiResponse, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("no API key configured")
	}
	params.Set("access_key", s.apiKey)

	resp, err := s.httpClient.Get(s.baseURL + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("aviationstack request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aviationstack returned status %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode aviationstack response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("aviationstack error: %s", parsed.Error.Info)
	}
	return &parsed, nil
}

func (s *AirlineService) formatAPIFlights(flights []apiFlight) []models.Flight {
	formatted := make([]models.Flight, 0, len(flights))
	for _, f := range flights {
		flight := models.Flight{
			FlightNumber: valueOr(f.Flight.IATA, "N/A"),
			Airline:      valueOr(f.Airline.Name, "Unknown"),
			Departure:    s.formatEndpoint(f.Departure),
			Arrival:      s.formatEndpoint(f.Arrival),
			Status:       titleStatus(f.FlightStatus),
		}
		if f.Aircraft != nil {
			flight.Aircraft = f.Aircraft.Registration
		}
		formatted = append(formatted, flight)
	}
	return formatted
}

func (s *AirlineService) formatEndpoint(ep apiEndpoint) models.FlightEndpoint {
	iata := valueOr(ep.IATA, "N/A")
	city := iata
	if known, ok := s.airportCityMap[iata]; ok {
		city = known
	}
	clock := "N/A"
	if ep.Scheduled != "" {
		if t, err := time.Parse(time.RFC3339, ep.Scheduled); err == nil {
			clock = t.Format("15:04")
		}
	}
	return models.FlightEndpoint{Airport: iata, City: city, Time: clock}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func titleStatus(status string) string {
	if status == "" {
		return "Unknown"
	}
	words := strings.Split(strings.ReplaceAll(status, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SearchFlights looks up flights by number or by city pair, live API first,
// backup data second.
func (s *AirlineService) SearchFlights(departureCity, arrivalCity, flightNumber string) []models.Flight {
	params := url.Values{"limit": {"10"}}
	if flightNumber != "" {
		params.Set("flight_iata", strings.ToUpper(flightNumber))
	} else if departureCity != "" && arrivalCity != "" {
		params.Set("dep_iata", s.GetAirportCode(departureCity))
		params.Set("arr_iata", s.GetAirportCode(arrivalCity))
	}

	if s.apiKey != "" && (flightNumber != "" || (departureCity != "" && arrivalCity != "")) {
		if data, err := s.makeAPIRequest(params); err != nil {
			log.Printf("Live flight lookup failed, using backup data: %v", err)
		} else if len(data.Data) > 0 {
			return s.formatAPIFlights(data.Data)
		}
	}

	return s.searchBackupFlights(departureCity, arrivalCity, flightNumber)
}

func (s *AirlineService) searchBackupFlights(departureCity, arrivalCity, flightNumber string) []models.Flight {
	var results []models.Flight
	for _, flight := range s.backup.SampleFlights {
		match := true
		if flightNumber != "" {
			match = strings.EqualFold(flight.FlightNumber, flightNumber)
		} else {
			if departureCity != "" {
				match = match && endpointMatches(flight.Departure, departureCity)
			}
			if arrivalCity != "" {
				match = match && endpointMatches(flight.Arrival, arrivalCity)
			}
		}
		if match {
			results = append(results, flight)
		}
	}
	return results
}

func endpointMatches(ep models.FlightEndpoint, cityOrCode string) bool {
	return strings.Contains(strings.ToLower(ep.City), strings.ToLower(cityOrCode)) ||
		strings.ToUpper(cityOrCode) == ep.Airport
}

// GetAirportCode resolves user input into an IATA code: already a code,
// then the known-city map, then the backup airports, then uppercased input.
func (s *AirlineService) GetAirportCode(cityOrCode string) string {
	if cityOrCode == "" {
		return "N/A"
	}
	if len(cityOrCode) == 3 && cityOrCode == strings.ToUpper(cityOrCode) {
		return cityOrCode
	}
	if code, ok := cityToIATA[strings.ToLower(cityOrCode)]; ok {
		return code
	}
	for _, airport := range s.backup.Airports {
		if strings.Contains(strings.ToLower(airport.City), strings.ToLower(cityOrCode)) {
			return airport.IATACode
		}
	}
	return strings.ToUpper(cityOrCode)
}

// SearchRoutes finds flights between a departure and arrival city.
func (s *AirlineService) SearchRoutes(departure, arrival string) []models.Flight {
	return s.SearchFlights(departure, arrival, "")
}

// GetFlightStatus looks up a single flight by number. Returns nil when the
// flight is unknown to both the live API and the backup data.
func (s *AirlineService) GetFlightStatus(flightNumber string) *models.Flight {
	if flightNumber == "" {
		return nil
	}
	flights := s.SearchFlights("", "", flightNumber)
	if len(flights) == 0 {
		return nil
	}
	return &flights[0]
}

// PopularDestinations lists the cities of the backup airports.
func (s *AirlineService) PopularDestinations() []string {
	cities := make([]string, 0, len(s.backup.Airports))
	for _, airport := range s.backup.Airports {
		cities = append(cities, airport.City)
	}
	return cities
}
