package database

import (
	"context"
	"time"

	"github.com/dhruvmish/Airline-Assistant/config"

	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect establishes the database connection. A config without a database
// target is not an error: the assistant then runs with in-memory data only.
func Connect(cfg *config.Config) error {
	if !cfg.DatabaseEnabled() {
		return nil
	}
	return ConnectMongoDB(cfg)
}

// Connected reports whether a live database connection exists.
func Connected() bool {
	return mongoDB != nil
}

// Disconnect closes database connection
func Disconnect() error {
	return DisconnectMongoDB()
}

// HealthCheck performs a database health check
func HealthCheck() error {
	if !Connected() {
		return nil
	}
	client := GetMongoClient()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return client.Ping(ctx, readpref.Primary())
}
