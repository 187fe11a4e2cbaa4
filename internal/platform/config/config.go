package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// UnitCostFallback is the unit cost used to derive the total of an
	// inventory adjustment when the caller does not supply one.
	UnitCostFallback decimal.Decimal

	// RateLimit is a ulule/limiter formatted rate string, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("UNIT_COST_FALLBACK", "1.00")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:  viper.GetString("PGSQL_URL"),
		Port:         viper.GetString("PORT"),
		IsProduction: viper.GetBool("IS_PRODUCTION"),
		RateLimit:    viper.GetString("RATE_LIMIT"),
	}

	unitCost, err := decimal.NewFromString(viper.GetString("UNIT_COST_FALLBACK"))
	if err != nil {
		return nil, fmt.Errorf("invalid UNIT_COST_FALLBACK: %w", err)
	}
	if unitCost.Sign() <= 0 {
		return nil, fmt.Errorf("UNIT_COST_FALLBACK must be positive, got %s", unitCost)
	}
	cfg.UnitCostFallback = unitCost

	return cfg, nil
}
