package nexusdb

import (
	"os"

	"github.com/rs/zerolog"
)

// DefaultEndpoint is the endpoint used when none is configured.
const DefaultEndpoint = "https://api.nexusdb.io/query"

// Config defines the configuration for the client.
type Config struct {
	// Endpoint is the URL of the NexusDB query endpoint.
	Endpoint string `json:"endpoint"`
	// APIKey is sent with every request in the API-Key header.
	APIKey string `json:"api_key"`
	// Logger receives debug records of every request payload and raw
	// response. When nil, logging is disabled.
	Logger *zerolog.Logger
}

// ConfigFromEnv builds a Config from the BASE_URL and NEXUSDB_API_KEY
// environment variables. BASE_URL falls back to DefaultEndpoint.
func ConfigFromEnv() *Config {
	endpoint := os.Getenv("BASE_URL")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Config{
		Endpoint: endpoint,
		APIKey:   os.Getenv("NEXUSDB_API_KEY"),
	}
}
