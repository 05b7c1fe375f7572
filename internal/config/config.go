package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Supported store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	TokenSecret string        `json:"token_secret"`
	TokenTTL    time.Duration `json:"token_ttl"`

	// Store configuration
	StoreDriver   string `json:"store_driver"`
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Relational database configuration (postgres, mysql, sqlite)
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Payment processor configuration
	PaymentSecretKey string `json:"payment_secret_key"`
	PaymentCurrency  string `json:"payment_currency"`

	// Cache configuration, disabled when RedisAddr is empty
	RedisAddr     string        `json:"redis_addr"`
	RedisPassword string        `json:"redis_password"`
	RedisDB       int           `json:"redis_db"`
	CacheTTL      time.Duration `json:"cache_ttl"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, LogLevel: %s, TokenSecret: [REDACTED], TokenTTL: %s, StoreDriver: %s, MongoURI: %s, MongoDatabase: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, PaymentSecretKey: [REDACTED], PaymentCurrency: %s, RedisAddr: %s, CacheTTL: %s}",
		c.Environment, c.Port, c.Host, c.LogLevel, c.TokenTTL, c.StoreDriver, maskDatabaseURL(c.MongoURI), c.MongoDatabase,
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPath, c.PaymentCurrency, c.RedisAddr, c.CacheTTL)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any required environment variable is missing or invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")

	// PORT is what most hosting platforms inject, APP_PORT wins when both are set
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", GetEnvWithDefault("PORT", "5000")))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	secret := GetEnvWithDefault("ACCESS_TOKEN_SECRET", "")
	if secret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET environment variable is required")
	}

	tokenTTL, err := time.ParseDuration(GetEnvWithDefault("TOKEN_TTL", "100h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	cacheTTL, err := time.ParseDuration(GetEnvWithDefault("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("STORE_DRIVER", DriverMongo))
	switch driver {
	case DriverMongo, DriverPostgres, DriverMySQL, DriverSQLite:
	case "postgresql":
		driver = DriverPostgres
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %s (supported: mongo, postgres, mysql, sqlite)", driver)
	}

	config := &Config{
		Environment:      GetEnvWithDefault("APP_ENV", "development"),
		Port:             port,
		Host:             GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		LogLevel:         GetEnvWithDefault("LOG_LEVEL", "info"),
		TokenSecret:      secret,
		TokenTTL:         tokenTTL,
		StoreDriver:      driver,
		MongoDatabase:    GetEnvWithDefault("MONGO_DATABASE", "bistroDB"),
		DBHost:           GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:           GetEnvWithDefault("DB_PORT", defaultDBPort(driver)),
		DBName:           GetEnvWithDefault("DB_NAME", "bistro"),
		DBUser:           GetEnvWithDefault("DB_USER", ""),
		DBPassword:       GetEnvWithDefault("DB_PASS", ""),
		DBSSLMode:        GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:           GetEnvWithDefault("DB_PATH", "bistro.sqlite"),
		PaymentSecretKey: GetEnvWithDefault("PAYMENT_SECRET_KEY", ""),
		PaymentCurrency:  strings.ToLower(GetEnvWithDefault("PAYMENT_CURRENCY", "usd")),
		RedisAddr:        GetEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:    GetEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:          GetEnvAsType("REDIS_DB", 0),
		CacheTTL:         cacheTTL,
	}

	if driver == DriverMongo {
		config.MongoURI, err = mongoURI(config)
		if err != nil {
			return nil, err
		}
	}

	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// mongoURI returns MONGO_URI when set, otherwise builds an Atlas style URI
// from the DB_USER, DB_PASS and MONGO_HOST credentials.
func mongoURI(c *Config) (string, error) {
	if uri := GetEnvWithDefault("MONGO_URI", ""); uri != "" {
		if _, err := url.ParseRequestURI(uri); err != nil {
			return "", fmt.Errorf("invalid MONGO_URI: %w", err)
		}
		return uri, nil
	}
	host := GetEnvWithDefault("MONGO_HOST", "")
	if host == "" {
		return "mongodb://localhost:27017", nil
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String(), nil
}

func defaultDBPort(driver string) string {
	switch driver {
	case DriverMySQL:
		return "3306"
	default:
		return "5432"
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(d).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
