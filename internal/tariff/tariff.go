// Package tariff converts estimated energy into money. The rate and the
// month scaling factor are deliberately parameters, not constants: the
// defaults mirror a common Indian residential tariff but carry no authority.
package tariff

const (
	DefaultRatePerKWh    = 6.0 // currency units per kWh
	DefaultWeeksPerMonth = 4.3 // month projection factor
)

// Tariff holds the pricing parameters for cost estimates.
type Tariff struct {
	RatePerKWh    float64
	WeeksPerMonth float64
}

// New builds a Tariff, substituting defaults for non-positive parameters.
func New(ratePerKWh, weeksPerMonth float64) Tariff {
	if ratePerKWh <= 0 {
		ratePerKWh = DefaultRatePerKWh
	}
	if weeksPerMonth <= 0 {
		weeksPerMonth = DefaultWeeksPerMonth
	}
	return Tariff{RatePerKWh: ratePerKWh, WeeksPerMonth: weeksPerMonth}
}

// Default returns the tariff with stock parameters.
func Default() Tariff {
	return New(0, 0)
}

// Cost prices an amount of energy in kWh.
func (t Tariff) Cost(kwh float64) float64 {
	return kwh * t.RatePerKWh
}

// MonthlyProjection extrapolates one tracked week's energy to a monthly bill.
func (t Tariff) MonthlyProjection(weeklyKWh float64) float64 {
	return weeklyKWh * t.WeeksPerMonth * t.RatePerKWh
}
