package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, InMemoryDSN, cfg.DBDSN)
	assert.Equal(t, 6.0, cfg.RatePerKWh)
	assert.Equal(t, 4.3, cfg.WeeksPerMonth)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOMEWATT_PORT", "9090")
	t.Setenv("HOMEWATT_RATE_PER_KWH", "8.5")
	t.Setenv("HOMEWATT_DB_DSN", "homewatt.db")
	t.Setenv("HOMEWATT_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 8.5, cfg.RatePerKWh)
	assert.Equal(t, "homewatt.db", cfg.DBDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMalformedFallsBack(t *testing.T) {
	t.Setenv("HOMEWATT_PORT", "not-a-port")
	t.Setenv("HOMEWATT_WEEKS_PER_MONTH", "many")

	cfg := Load()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4.3, cfg.WeeksPerMonth)
}

func TestTariffFromConfig(t *testing.T) {
	t.Setenv("HOMEWATT_RATE_PER_KWH", "-3")

	// Negative rate is rejected by the tariff constructor.
	tf := Load().Tariff()
	assert.Equal(t, 6.0, tf.RatePerKWh)
}
