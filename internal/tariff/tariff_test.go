package tariff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	tf := New(0, -1)
	assert.Equal(t, DefaultRatePerKWh, tf.RatePerKWh)
	assert.Equal(t, DefaultWeeksPerMonth, tf.WeeksPerMonth)

	custom := New(8.5, 4.0)
	assert.Equal(t, 8.5, custom.RatePerKWh)
	assert.Equal(t, 4.0, custom.WeeksPerMonth)
}

func TestCost(t *testing.T) {
	tf := Default()
	assert.InDelta(t, 88.8, tf.Cost(14.8), 1e-9)
	assert.Equal(t, 0.0, tf.Cost(0))
}

func TestMonthlyProjection(t *testing.T) {
	tf := Default()
	// weekly total * 4.3 * 6, same math the dashboard shows.
	assert.InDelta(t, 103.6*4.3*6, tf.MonthlyProjection(103.6), 1e-9)

	flat := New(1, 4)
	assert.InDelta(t, 40, flat.MonthlyProjection(10), 1e-9)
}
