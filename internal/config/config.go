package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"team-showcase.backend/pkg/crypto"
)

const (
	BackendMemory     = "memory"
	BackendRelational = "relational"
	BackendDocument   = "document"
)

const (
	EnvelopeData = "data"
	EnvelopeBare = "bare"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Security SecurityConfig
	Admin    AdminConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port             string
	Env              string
	CORSOrigin       string
	MaxBodyBytes     int64
	ResponseEnvelope string
}

func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Backend        string
	SeedData       bool
	HealthInterval time.Duration
}

// DatabaseConfig holds relational database configuration
type DatabaseConfig struct {
	URL string
}

// Dialect reports which gorm driver serves the configured URL.
func (c DatabaseConfig) Dialect() string {
	lower := strings.ToLower(c.URL)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return "postgres"
	}
	return "sqlite"
}

// MongoConfig holds document store configuration
type MongoConfig struct {
	URI      string
	Database string
}

// RedisConfig holds Redis configuration. An empty URL disables Redis.
type RedisConfig struct {
	URL      string
	PASSWORD string
}

func (c RedisConfig) Enabled() bool {
	return strings.TrimSpace(c.URL) != ""
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// AdminConfig controls the admin login
type AdminConfig struct {
	AuthRequired bool
	Password     string
	PasswordHash string
}

// ErrPasswordHashFormat is returned when ADMIN_PASSWORD_HASH holds something other than a bcrypt hash.
var ErrPasswordHashFormat = errors.New("ADMIN_PASSWORD_HASH is not a bcrypt hash")

// Validate rejects a password hash that no password could ever match.
func (c AdminConfig) Validate() error {
	if c.PasswordHash != "" && !crypto.IsBcryptHash(c.PasswordHash) {
		return ErrPasswordHashFormat
	}
	return nil
}

// NormalizeBackend maps backend aliases onto the three canonical names. Unknown
// values are returned lower-cased so the caller can reject them.
func NormalizeBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", BackendRelational, "sql", "sqlite", "postgres":
		return BackendRelational
	case BackendMemory, "mock":
		return BackendMemory
	case BackendDocument, "mongo", "mongodb":
		return BackendDocument
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	backend := NormalizeBackend(getEnv("STORE_BACKEND", BackendRelational))
	envelope := strings.ToLower(getEnv("RESPONSE_ENVELOPE", EnvelopeData))
	if envelope != EnvelopeBare {
		envelope = EnvelopeData
	}

	return &Config{
		Server: ServerConfig{
			Port:             getEnv("PORT", getEnv("SERVER_PORT", "3001")),
			Env:              getEnv("SERVER_ENV", "development"),
			CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
			MaxBodyBytes:     int64(getEnvAsInt("MAX_BODY_BYTES", 50<<20)),
			ResponseEnvelope: envelope,
		},
		Store: StoreConfig{
			Backend:        backend,
			SeedData:       getEnvAsBool("SEED_DATA", backend == BackendMemory),
			HealthInterval: getEnvAsDuration("STORE_HEALTH_INTERVAL", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "data.db"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGODB_DATABASE", "team_showcase"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:       getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 12*time.Hour),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		Admin: AdminConfig{
			AuthRequired: getEnvAsBool("ADMIN_AUTH_REQUIRED", false),
			Password:     getEnv("ADMIN_PASSWORD", "admin123"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
