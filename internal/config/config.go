// Package config reads runtime settings from the environment, with optional
// .env support for development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"homewatt/internal/tariff"
)

// InMemoryDSN keeps the week store inside the process; nothing survives a
// restart, which is the intended scope of the calculator.
const InMemoryDSN = "file::memory:?cache=shared"

type Config struct {
	Port          int
	DBDSN         string
	RatePerKWh    float64
	WeeksPerMonth float64
	LogLevel      string
}

// Load reads HOMEWATT_* variables, after loading a .env file when present.
// Malformed numeric values fall back to defaults rather than failing startup.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          envInt("HOMEWATT_PORT", 8080),
		DBDSN:         envString("HOMEWATT_DB_DSN", InMemoryDSN),
		RatePerKWh:    envFloat("HOMEWATT_RATE_PER_KWH", tariff.DefaultRatePerKWh),
		WeeksPerMonth: envFloat("HOMEWATT_WEEKS_PER_MONTH", tariff.DefaultWeeksPerMonth),
		LogLevel:      envString("HOMEWATT_LOG_LEVEL", "info"),
	}
}

// Tariff builds the pricing parameters from the loaded config.
func (c *Config) Tariff() tariff.Tariff {
	return tariff.New(c.RatePerKWh, c.WeeksPerMonth)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
