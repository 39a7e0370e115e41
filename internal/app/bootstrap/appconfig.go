// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for cinelog.
//
// These values come from environment variables, configuration files,
// or command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig
// handles framework-level settings; AppConfig is everything specific
// to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Timeouts for the connect/load/flush phases of the lifecycle
	ConnectTimeout time.Duration
	SyncTimeout    time.Duration
}
