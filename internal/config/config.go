// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	JWT      JWTConfig
	Upload   UploadConfig
	PokeAPI  PokeAPIConfig
	Catalog  CatalogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	// URL is a full DSN; when set, the individual fields are ignored
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds the process-wide token signing secret
type JWTConfig struct {
	Secret string
}

// UploadConfig holds profile picture storage settings
type UploadConfig struct {
	Dir string
}

// PokeAPIConfig holds settings of the third-party catalog API
type PokeAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogConfig holds settings of the catalog seeder
type CatalogConfig struct {
	SyncSchedule string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	if err := loadDatabase(cfg); err != nil {
		return nil, err
	}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "5000" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = os.Getenv("JWTSECRET")
	}
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	cfg.JWT.Secret = jwtSecret

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "upload/profiles"
	}
	cfg.Upload.Dir = uploadDir

	// PokeAPI configuration
	pokeAPIBaseURL := os.Getenv("POKEAPI_BASE_URL")
	if pokeAPIBaseURL == "" {
		pokeAPIBaseURL = "https://pokeapi.co/api/v2"
	}
	cfg.PokeAPI.BaseURL = strings.TrimRight(pokeAPIBaseURL, "/")

	timeoutStr := os.Getenv("POKEAPI_TIMEOUT")
	if timeoutStr == "" {
		timeoutStr = "5s"
	}
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid POKEAPI_TIMEOUT: %w", err)
	}
	cfg.PokeAPI.Timeout = timeout

	// Optional cron expression, seeder runs once when empty
	cfg.Catalog.SyncSchedule = os.Getenv("CATALOG_SYNC_SCHEDULE")

	return cfg, nil
}

// loadDatabase reads either the DATABASE connection string or the DB_* parts
func loadDatabase(cfg *Config) error {
	if dsn := os.Getenv("DATABASE"); dsn != "" {
		parsed, err := mysql.ParseDSN(dsn)
		if err != nil {
			return fmt.Errorf("invalid DATABASE: %w", err)
		}
		// repositories scan DATETIME columns into time.Time
		parsed.ParseTime = true
		cfg.Database.URL = parsed.FormatDSN()
		return nil
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		return fmt.Errorf("DATABASE or DB_HOST is required")
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "3306"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	cfg.Database.User = dbUser

	cfg.Database.Password = os.Getenv("DB_PASSWORD")

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	cfg.Database.DBName = dbName

	return nil
}

// parseOrigins splits comma-separated CORS origins, allowing all when none are given
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
