package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dhruvmish/Airline-Assistant/config"
	"github.com/dhruvmish/Airline-Assistant/controllers"
	"github.com/dhruvmish/Airline-Assistant/middleware"
	"github.com/dhruvmish/Airline-Assistant/services"
)

// Deps carries the services the route handlers work with; they are
// constructed once in main and passed down explicitly.
type Deps struct {
	Chatbot  *services.ChatbotService
	Airline  *services.AirlineService
	Booking  *services.BookingService
	Messages *services.MessageService
	Users    *services.UserService
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	cfg := config.Get()

	// Initialize controllers
	chatbotController := controllers.NewChatbotController(deps.Chatbot, deps.Messages)
	wsController := controllers.NewWebSocketController(deps.Chatbot)
	flightController := controllers.NewFlightController(deps.Airline, deps.Booking)

	// Public routes
	public := router.Group("/api/v1")
	{
		// Chatbot
		public.POST("/chat", chatbotController.HandleChat)
		public.POST("/entities", chatbotController.ExtractEntities)
		public.GET("/respond/:tag", chatbotController.GetResponse)
		public.GET("/intents", chatbotController.GetSupportedIntents)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)

		// Flight data
		public.GET("/flights/status/:number", flightController.GetFlightStatus)
		public.GET("/flights/search", flightController.SearchFlights)
		public.GET("/flights/destinations", flightController.GetDestinations)
		public.GET("/bookings/:id", flightController.GetBooking)
		public.GET("/bookings", flightController.SearchBookings)
	}

	// Session management; transcript history requires auth when enabled.
	session := router.Group("/api/v1")
	if cfg.AuthEnabled() {
		session.Use(middleware.RequireAuth())
	}
	{
		session.GET("/chat/history", chatbotController.GetChatHistory)
		session.GET("/chat/context", chatbotController.GetContext)
		session.POST("/chat/clear", chatbotController.ClearSession)
	}

	// Auth routes, only when a database and JWT secret are configured
	if cfg.AuthEnabled() {
		authController := controllers.NewAuthController(deps.Users)
		auth := router.Group("/auth")
		{
			auth.POST("/signup", authController.Signup)
			auth.POST("/login", authController.Login)
			auth.POST("/logout", authController.Logout)
		}
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
