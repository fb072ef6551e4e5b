package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Auth      AuthConfig
	Valuation ValuationConfig
	Feed      FeedConfig
	Scheduler SchedulerConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds API authentication configuration.
// FernetKey is a base64 fernet key; mutating endpoints require an
// X-API-Key header carrying a token sealed with it. Empty disables auth.
type AuthConfig struct {
	FernetKey string
}

// ValuationConfig carries deployment overrides for the valuation
// assumptions. Zero values mean "use the engine default".
type ValuationConfig struct {
	MortalityRate         float64
	MonthlyCarryCost      float64
	FallbackPricePerKg    float64
	ReferenceCalfWeightKg float64
	CattleGestationDays   int
	SheepGestationDays    int
	GoatGestationDays     int
	PigGestationDays      int
}

// FeedConfig holds the saleyard market report feed configuration.
type FeedConfig struct {
	BaseURL string
	APIKey  string
}

// SchedulerConfig holds cron schedules for background jobs.
type SchedulerConfig struct {
	Enabled          bool
	PriceRefreshCron string
	SnapshotCron     string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/herd_portfolio.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Auth: AuthConfig{
			FernetKey: getEnv("API_FERNET_KEY", ""),
		},
		Valuation: ValuationConfig{
			MortalityRate:         getEnvFloat("VALUATION_MORTALITY_RATE", 0),
			MonthlyCarryCost:      getEnvFloat("VALUATION_MONTHLY_CARRY_COST", 0),
			FallbackPricePerKg:    getEnvFloat("VALUATION_FALLBACK_PRICE_PER_KG", 0),
			ReferenceCalfWeightKg: getEnvFloat("VALUATION_CALF_WEIGHT_KG", 0),
			CattleGestationDays:   getEnvInt("VALUATION_CATTLE_GESTATION_DAYS", 0),
			SheepGestationDays:    getEnvInt("VALUATION_SHEEP_GESTATION_DAYS", 0),
			GoatGestationDays:     getEnvInt("VALUATION_GOAT_GESTATION_DAYS", 0),
			PigGestationDays:      getEnvInt("VALUATION_PIG_GESTATION_DAYS", 0),
		},
		Feed: FeedConfig{
			BaseURL: getEnv("MARKET_FEED_URL", ""),
			APIKey:  getEnv("MARKET_FEED_API_KEY", ""),
		},
		Scheduler: SchedulerConfig{
			Enabled:          getEnv("SCHEDULER_ENABLED", "true") == "true",
			PriceRefreshCron: getEnv("PRICE_REFRESH_CRON", "0 6 * * *"),
			SnapshotCron:     getEnv("SNAPSHOT_CRON", "30 6 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value.
// Unparseable values fall back to the default rather than failing startup.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt gets an integer environment variable or returns a default value.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
