package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nicopkrauss/Talenttracker2-sub019/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Redis backs the readiness summary cache and the realtime event channel.
	// Leave RedisAddr empty to run without either.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Deployment-wide approval toggles applied to projects without their own
	// settings row. Admin and in-house roles always hold approval authority.
	SupervisorCanApproveTimecards  bool
	CoordinatorCanApproveTimecards bool
	EscortCanApproveTimecards      bool

	// Rate limiting, e.g. "100-M" for 100 requests per minute per client IP.
	RateLimit string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// ApprovalDefaults returns the deployment-wide approval toggles as project
// settings, for projects that carry no settings row.
func (c *Config) ApprovalDefaults() domain.ProjectSettings {
	return domain.ProjectSettings{
		SupervisorCanApproveTimecards:  c.SupervisorCanApproveTimecards,
		CoordinatorCanApproveTimecards: c.CoordinatorCanApproveTimecards,
		EscortCanApproveTimecards:      c.EscortCanApproveTimecards,
	}
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SUPERVISOR_CAN_APPROVE_TIMECARDS", false)
	viper.SetDefault("COORDINATOR_CAN_APPROVE_TIMECARDS", false)
	viper.SetDefault("ESCORT_CAN_APPROVE_TIMECARDS", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://app.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	if cfg.RedisAddr == "" {
		log.Println("Warning: REDIS_ADDR not set. Readiness caching and event publishing are disabled.")
	}

	cfg.SupervisorCanApproveTimecards = viper.GetBool("SUPERVISOR_CAN_APPROVE_TIMECARDS")
	cfg.CoordinatorCanApproveTimecards = viper.GetBool("COORDINATOR_CAN_APPROVE_TIMECARDS")
	cfg.EscortCanApproveTimecards = viper.GetBool("ESCORT_CAN_APPROVE_TIMECARDS")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")

	return cfg, nil
}
