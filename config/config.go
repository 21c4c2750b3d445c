package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database (optional; the assistant runs fully offline without it)
	Database DatabaseConfig

	// Local intent-understanding engine
	NLP NLPConfig

	// Flight data
	Airline AirlineConfig

	// Hosted LLM fallback
	AI AIConfig

	// Auth
	JWT JWTConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type NLPConfig struct {
	IntentsPath         string
	ModelPath           string
	ConfidenceThreshold float64
	FuzzyThreshold      int
	MaxSessions         int
}

type AirlineConfig struct {
	APIKey  string // AviationStack; empty = backup data only
	BaseURL string
	Timeout time.Duration
}

type AIConfig struct {
	APIKey    string // empty disables the hosted fallback
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
	CookieName      string
}

var cfg *Config

// Load initializes the configuration
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "airline_assistant"),
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		NLP: NLPConfig{
			IntentsPath:         getEnv("NLP_INTENTS_PATH", "intents.json"),
			ModelPath:           getEnv("NLP_MODEL_PATH", "nlp_model.gob"),
			ConfidenceThreshold: getEnvAsFloat("NLP_CONFIDENCE_THRESHOLD", 0.3),
			FuzzyThreshold:      getEnvAsInt("NLP_FUZZY_THRESHOLD", 70),
			MaxSessions:         getEnvAsInt("NLP_MAX_SESSIONS", 0),
		},

		Airline: AirlineConfig{
			APIKey:  getEnv("AVIATIONSTACK_API_KEY", ""),
			BaseURL: getEnv("AVIATIONSTACK_BASE_URL", "http://api.aviationstack.com/v1/flights"),
			Timeout: getEnvAsDuration("AVIATIONSTACK_TIMEOUT", "15s"),
		},

		AI: AIConfig{
			APIKey:    getEnv("OPENAI_API_KEY", ""),
			BaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/chat/completions"),
			Model:     getEnv("AI_MODEL", "gpt-4o"),
			MaxTokens: getEnvAsInt("AI_MAX_TOKENS", 500),
			Timeout:   getEnvAsDuration("AI_TIMEOUT", "30s"),
		},

		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", ""),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 12),
			CookieName:      getEnv("JWT_COOKIE_NAME", "access_token"),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func validate() error {
	if cfg.NLP.ConfidenceThreshold <= 0 || cfg.NLP.ConfidenceThreshold > 1 {
		return fmt.Errorf("NLP_CONFIDENCE_THRESHOLD must be in (0,1], got %v", cfg.NLP.ConfidenceThreshold)
	}
	if cfg.NLP.FuzzyThreshold < 0 || cfg.NLP.FuzzyThreshold > 100 {
		return fmt.Errorf("NLP_FUZZY_THRESHOLD must be in [0,100], got %d", cfg.NLP.FuzzyThreshold)
	}
	if cfg.NLP.IntentsPath == "" || cfg.NLP.ModelPath == "" {
		return fmt.Errorf("NLP_INTENTS_PATH and NLP_MODEL_PATH must be set")
	}
	return nil
}

// DatabaseEnabled reports whether a MongoDB target is configured at all.
func (c *Config) DatabaseEnabled() bool {
	return c.Database.URI != "" || c.Database.Host != ""
}

// AuthEnabled reports whether cookie auth can be mounted.
func (c *Config) AuthEnabled() bool {
	return c.DatabaseEnabled() && c.JWT.Secret != ""
}

// BuildDatabaseURI constructs the database URI if not provided
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
