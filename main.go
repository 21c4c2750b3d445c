package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dhruvmish/Airline-Assistant/config"
	"github.com/dhruvmish/Airline-Assistant/database"
	"github.com/dhruvmish/Airline-Assistant/nlp"
	"github.com/dhruvmish/Airline-Assistant/routes"
	"github.com/dhruvmish/Airline-Assistant/services"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg := config.Get()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database (optional; the assistant runs offline without one)
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect()

	if database.Connected() {
		log.Println("Database connected, message logging and auth enabled")
	} else {
		log.Println("No database configured, running with in-memory data only")
	}

	// Build the intent-understanding engine. Training happens here when no
	// cached model matches the current intents file.
	engine, err := nlp.NewEngine(nlp.Config{
		IntentsPath:         cfg.NLP.IntentsPath,
		ModelPath:           cfg.NLP.ModelPath,
		ConfidenceThreshold: cfg.NLP.ConfidenceThreshold,
		FuzzyThreshold:      cfg.NLP.FuzzyThreshold,
		MaxSessions:         cfg.NLP.MaxSessions,
	})
	if err != nil {
		log.Fatalf("Failed to initialize intent engine: %v", err)
	}
	log.Printf("Intent engine ready with %d intents", len(engine.Intents()))

	// Services
	db := database.GetMongoDB()
	airlineSvc := services.NewAirlineService(cfg.Airline.APIKey, cfg.Airline.BaseURL, cfg.Airline.Timeout)
	bookingSvc := services.NewBookingService()
	aiSvc := services.NewAIService(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.MaxTokens, cfg.AI.Timeout)
	messageSvc := services.NewMessageService(db)
	userSvc := services.NewUserService(db)
	chatbotSvc := services.NewChatbotService(engine, airlineSvc, bookingSvc, aiSvc, messageSvc)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		dbStatus := "disabled"
		if database.Connected() {
			dbStatus = "ok"
			if err := database.HealthCheck(); err != nil {
				dbStatus = "unreachable"
			}
		}
		c.JSON(200, gin.H{
			"status":          "ok",
			"timestamp":       time.Now(),
			"database":        dbStatus,
			"active_sessions": engine.ActiveSessions(),
		})
	})

	// Setup all routes
	routes.SetupRoutes(router, routes.Deps{
		Chatbot:  chatbotSvc,
		Airline:  airlineSvc,
		Booking:  bookingSvc,
		Messages: messageSvc,
		Users:    userSvc,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
