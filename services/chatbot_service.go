package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dhruvmish/Airline-Assistant/models"
	"github.com/dhruvmish/Airline-Assistant/nlp"
)

// ChatbotService composes the local intent engine with the flight and
// booking data sources: the engine resolves what the user wants, the
// handlers enrich the templated response with actual data.
type ChatbotService struct {
	engine     *nlp.Engine
	airlineSvc *AirlineService
	bookingSvc *BookingService
	aiSvc      *AIService
	messageSvc *MessageService
}

func NewChatbotService(engine *nlp.Engine, airlineSvc *AirlineService, bookingSvc *BookingService, aiSvc *AIService, messageSvc *MessageService) *ChatbotService {
	return &ChatbotService{
		engine:     engine,
		airlineSvc: airlineSvc,
		bookingSvc: bookingSvc,
		aiSvc:      aiSvc,
		messageSvc: messageSvc,
	}
}

// Engine exposes the underlying intent engine for callers that want the
// raw extract/respond operations.
func (s *ChatbotService) Engine() *nlp.Engine {
	return s.engine
}

// ProcessMessage runs one utterance through the engine and enriches the
// result per intent. It never fails the chat turn: enrichment and
// persistence problems degrade to the engine's own response.
func (s *ChatbotService) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	result := s.engine.Process(req.SessionID, req.Message)

	response := &models.ChatResponse{
		Response:   result.Response,
		Intent:     result.Intent,
		Confidence: result.Confidence,
		Entities:   result.Entities,
		SessionID:  req.SessionID,
	}

	switch result.Intent {
	case "flight_status":
		s.enrichFlightStatus(response, result.Entities)
	case "search_flights":
		s.enrichFlightSearch(response, result.Entities)
	case "booking_inquiry":
		s.enrichBooking(response, result.Entities)
	case "":
		s.answerWithAI(ctx, response, req.Message)
	}

	msg := &models.Message{
		SessionID:   req.SessionID,
		UserMessage: req.Message,
		BotResponse: response.Response,
		Intent:      result.Intent,
		Confidence:  result.Confidence,
		Entities:    result.Entities,
		Channel:     req.Channel,
		Timestamp:   time.Now(),
	}
	if err := s.messageSvc.Save(ctx, msg); err != nil {
		log.Printf("Failed to save chat message: %v", err)
	}

	return response
}

func (s *ChatbotService) enrichFlightStatus(response *models.ChatResponse, entities models.EntityBag) {
	flightNumber := entities.First(models.EntityFlightNumbers)
	if flightNumber == "" {
		return
	}
	flight := s.airlineSvc.GetFlightStatus(flightNumber)
	if flight == nil {
		response.Response = fmt.Sprintf("I couldn't find flight %s. Please double-check the flight number.", flightNumber)
		return
	}
	response.Response = formatFlight(*flight)
	response.Data = map[string]interface{}{"flight": flight}
}

func (s *ChatbotService) enrichFlightSearch(response *models.ChatResponse, entities models.EntityBag) {
	cities := entities[models.EntityCities]
	codes := entities[models.EntityAirportCodes]

	var departure, arrival string
	switch {
	case len(cities) >= 2:
		departure, arrival = cities[0], cities[1]
	case len(codes) >= 2:
		departure, arrival = codes[0], codes[1]
	default:
		return
	}

	flights := s.airlineSvc.SearchRoutes(departure, arrival)
	if len(flights) == 0 {
		response.Response = fmt.Sprintf("I couldn't find any flights from %s to %s. Popular destinations include %s.",
			departure, arrival, strings.Join(s.airlineSvc.PopularDestinations(), ", "))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what I found from %s to %s:\n", departure, arrival)
	for _, flight := range flights {
		fmt.Fprintf(&b, "• %s\n", formatFlightLine(flight))
	}
	response.Response = strings.TrimRight(b.String(), "\n")
	response.Data = map[string]interface{}{"flights": flights}
}

func (s *ChatbotService) enrichBooking(response *models.ChatResponse, entities models.EntityBag) {
	ref := entities.First(models.EntityBookingRefs)
	if ref == "" {
		return
	}
	booking, ok := s.bookingSvc.FindBooking(ref)
	if !ok {
		response.Response = fmt.Sprintf("I couldn't find a booking with reference %s. Please double-check it.", ref)
		return
	}
	response.Response = formatBooking(booking)
	response.Data = map[string]interface{}{"booking": booking}
}

// answerWithAI hands unresolved utterances to the hosted model when one is
// configured; otherwise the engine's clarification response stands.
func (s *ChatbotService) answerWithAI(ctx context.Context, response *models.ChatResponse, message string) {
	if !s.aiSvc.Enabled() {
		return
	}
	answer, err := s.aiSvc.GenerateResponse(ctx, message)
	if err != nil {
		log.Printf("AI fallback failed: %v", err)
		return
	}
	response.Response = answer
}

func formatFlight(f models.Flight) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flight %s (%s) is %s.\n", f.FlightNumber, f.Airline, f.Status)
	fmt.Fprintf(&b, "• Departure: %s (%s) at %s\n", f.Departure.City, f.Departure.Airport, f.Departure.Time)
	fmt.Fprintf(&b, "• Arrival: %s (%s) at %s", f.Arrival.City, f.Arrival.Airport, f.Arrival.Time)
	if f.Aircraft != "" {
		fmt.Fprintf(&b, "\n• Aircraft: %s", f.Aircraft)
	}
	return b.String()
}

func formatFlightLine(f models.Flight) string {
	return fmt.Sprintf("%s (%s): %s %s → %s %s, %s",
		f.FlightNumber, f.Airline,
		f.Departure.Airport, f.Departure.Time,
		f.Arrival.Airport, f.Arrival.Time,
		f.Status)
}

func formatBooking(b models.Booking) string {
	return fmt.Sprintf("Booking %s for %s is %s.\n• Flight: %s\n• Route: %s → %s\n• Date: %s, Seat %s",
		b.BookingID, b.PassengerName, strings.ToLower(b.Status),
		b.FlightNumber, b.Departure, b.Arrival, b.Date, b.Seat)
}
