package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Server ServerConfig

	// Authentication Configuration
	Auth AuthConfig

	// Database Configuration
	Database DatabaseConfig

	// Logging Configuration
	Logging LoggingConfig

	// Deployment policy resolved once at startup
	Policy DeploymentPolicy
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
}

// AuthConfig holds token-signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration

	// EphemeralSecret is true when the secret was generated at startup
	// (development only) and sessions will not survive a restart.
	EphemeralSecret bool
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	URL string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// DeploymentPolicy captures every environment-dependent decision in one
// place: cookie attributes and the CORS allow list. Handlers never check
// the environment flag themselves.
type DeploymentPolicy struct {
	Production     bool
	AllowedOrigins []string
	Cookie         CookiePolicy
}

// CookiePolicy defines the session cookie attributes for a deployment
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite
	Domain   string // set only for local deployments
	Path     string
	MaxAge   time.Duration
}

const defaultTokenTTL = 7 * 24 * time.Hour

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	production := os.Getenv("APP_ENV") == "production"

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	secret := os.Getenv("JWT_SECRET")
	ephemeral := false
	if secret == "" {
		if production {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		// Development convenience: a random per-process secret instead of a
		// guessable constant. Sessions do not survive a restart.
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, fmt.Errorf("failed to generate development JWT secret: %w", err)
		}
		secret = hex.EncodeToString(buf)
		ephemeral = true
	}

	tokenTTL := defaultTokenTTL
	if raw := os.Getenv("JWT_EXPIRES_IN"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", raw, err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %q", raw)
		}
		tokenTTL = ttl
	}

	policy, err := resolvePolicy(production, tokenTTL)
	if err != nil {
		return nil, err
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = "products.sqlite"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "json"
	}

	return &Config{
		Server: ServerConfig{
			Port: port,
		},
		Auth: AuthConfig{
			JWTSecret:       secret,
			TokenTTL:        tokenTTL,
			EphemeralSecret: ephemeral,
		},
		Database: DatabaseConfig{
			URL: dbURL,
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
		Policy: policy,
	}, nil
}

// resolvePolicy derives cookie and CORS policy from the deployment
// environment. Production requires an explicit frontend origin: an empty
// allow list is a configuration error, never a wildcard.
func resolvePolicy(production bool, cookieTTL time.Duration) (DeploymentPolicy, error) {
	if production {
		frontend := os.Getenv("FRONTEND_URL")
		if frontend == "" {
			return DeploymentPolicy{}, fmt.Errorf("FRONTEND_URL is required in production")
		}
		return DeploymentPolicy{
			Production:     true,
			AllowedOrigins: []string{frontend},
			Cookie: CookiePolicy{
				Secure:   true,
				SameSite: http.SameSiteNoneMode,
				// No domain: the cookie must be deliverable cross-origin
				// to the configured frontend.
				Path:   "/",
				MaxAge: cookieTTL,
			},
		}, nil
	}

	return DeploymentPolicy{
		Production:     false,
		AllowedOrigins: []string{"http://localhost:3000", "http://localhost:3001"},
		Cookie: CookiePolicy{
			Secure:   false,
			SameSite: http.SameSiteLaxMode,
			Domain:   "localhost",
			Path:     "/",
			MaxAge:   cookieTTL,
		},
	}, nil
}

// Environment returns the human-readable deployment name used in health
// responses and startup logs.
func (c *Config) Environment() string {
	if c.Policy.Production {
		return "production"
	}
	return "development"
}
