package estimator

import "math"

// weatherBand maps a half-open temperature range to the fan/AC multiplier and
// its descriptive label. Bands are evaluated in order; a temperature belongs
// to the first band whose exclusive upper bound is above it, so an exact
// boundary value (18.0, 35.0, ...) falls into the upper band.
type weatherBand struct {
	upperC     float64 // exclusive
	multiplier float64
	label      string
}

var weatherBands = []weatherBand{
	{upperC: 18, multiplier: 0.1, label: "Very Cold"},
	{upperC: 22, multiplier: 0.3, label: "Cool"},
	{upperC: 26, multiplier: 0.6, label: "Comfortable"},
	{upperC: 30, multiplier: 0.8, label: "Warm"},
	{upperC: 35, multiplier: 1.0, label: "Hot"},
	{upperC: math.Inf(1), multiplier: 1.3, label: "Very Hot"},
}

func bandFor(tempC float64) weatherBand {
	for _, b := range weatherBands {
		if tempC < b.upperC {
			return b
		}
	}
	// Unreachable: the last band is unbounded above.
	return weatherBands[len(weatherBands)-1]
}

// WeatherMultiplier returns the dimensionless factor applied to the fan/AC
// base consumption for a temperature in °C. Extreme inputs are not clamped;
// they land in the first or last band.
func WeatherMultiplier(tempC float64) float64 {
	return bandFor(tempC).multiplier
}

// WeatherLabel returns the descriptive weather text for a temperature,
// sharing the band boundaries with WeatherMultiplier.
func WeatherLabel(tempC float64) string {
	return bandFor(tempC).label
}

// MultiplierBand is one row of the weather band table for display. UpToC is
// nil for the unbounded last band.
type MultiplierBand struct {
	UpToC      *float64 `json:"up_to_c"`
	Multiplier float64  `json:"multiplier"`
	Label      string   `json:"label"`
}

// Multipliers returns the weather band table in ascending order.
func Multipliers() []MultiplierBand {
	bands := make([]MultiplierBand, 0, len(weatherBands))
	for _, b := range weatherBands {
		mb := MultiplierBand{Multiplier: b.multiplier, Label: b.label}
		if !math.IsInf(b.upperC, 1) {
			upper := b.upperC
			mb.UpToC = &upper
		}
		bands = append(bands, mb)
	}
	return bands
}
