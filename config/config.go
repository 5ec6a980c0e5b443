// Package config provides configuration management for the packing planner.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Auth     AuthConfig
	Session  SessionConfig
	Upstream UpstreamConfig
	Database DatabaseConfig
	Events   EventsConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// AuthConfig holds API key configuration. Auth is on when keys are set.
type AuthConfig struct {
	APIKeys []string
}

// Enabled reports whether API key authentication is required.
func (a AuthConfig) Enabled() bool {
	return len(a.APIKeys) > 0
}

// SessionConfig holds the packing session store configuration.
type SessionConfig struct {
	Capacity    int
	TTL         time.Duration
	Shards      int
	AdvisoryTTL time.Duration
}

// UpstreamConfig holds the shipments API client configuration.
type UpstreamConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// EventsConfig holds Kafka publisher configuration. Publishing is on when
// brokers are set.
type EventsConfig struct {
	Brokers      []string
	Topic        string
	BatchTimeout time.Duration
	RequiredAcks int
}

// Enabled reports whether shipment events are published.
func (e EventsConfig) Enabled() bool {
	return len(e.Brokers) > 0
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Auth: AuthConfig{
			APIKeys: parseList(os.Getenv("API_KEYS")),
		},
		Session: SessionConfig{
			Capacity:    getEnvInt("SESSION_CAPACITY", 1000),
			TTL:         getEnvDuration("SESSION_TTL", 30*time.Minute),
			Shards:      getEnvInt("SESSION_SHARDS", 1),
			AdvisoryTTL: getEnvDuration("ADVISORY_TTL", 4*time.Second),
		},
		Upstream: UpstreamConfig{
			BaseURL:                        getEnv("SHIPMENTS_API_URL", "http://localhost:5000/api"),
			Token:                          getEnv("SHIPMENTS_API_TOKEN", ""),
			Timeout:                        getEnvDuration("SHIPMENTS_API_TIMEOUT", 15*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("SHIPMENTS_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("SHIPMENTS_CB_SUCCESS_THRESHOLD", 1),
			CircuitBreakerTimeout:          getEnvDuration("SHIPMENTS_CB_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "pack_planner"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Events: EventsConfig{
			Brokers:      parseList(os.Getenv("KAFKA_BROKERS")),
			Topic:        getEnv("KAFKA_TOPIC", "shipments.packed"),
			BatchTimeout: getEnvDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
			RequiredAcks: getEnvInt("KAFKA_REQUIRED_ACKS", 1),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseList splits a comma separated value, dropping blanks.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	return append(defaults, parseList(s)...)
}
