// Package advisor produces the energy saving tips shown next to estimates.
// Rules are static; thresholds follow the dashboard copy they came from.
package advisor

import "homewatt/internal/estimator"

// Tip is a short actionable hint for a single day.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// DailyTip picks the tip for one day's temperature.
func DailyTip(tempC float64) Tip {
	switch {
	case tempC > 30:
		return Tip{
			Title: "Hot Day Tips",
			Body:  "Use AC efficiently, close curtains during day, use fans with AC",
		}
	case tempC < 20:
		return Tip{
			Title: "Cold Day Tips",
			Body:  "Reduced fan usage, use natural light, water heater usage may increase",
		}
	default:
		return Tip{
			Title: "Comfortable Day Tips",
			Body:  "Perfect weather for natural ventilation, minimal AC usage needed",
		}
	}
}

// WeekProfile is the aggregate input the weekly recommendations key on.
type WeekProfile struct {
	AvgTempC    float64
	AvgDailyKWh float64
	HousingType estimator.HousingType
}

// WeeklyRecommendations builds the personalized tip list for a tracked week.
// Order is stable: conditional groups first, baseline tips last.
func WeeklyRecommendations(p WeekProfile) []string {
	var recs []string

	if p.AvgTempC > 30 {
		recs = append(recs,
			"Install ceiling fans to reduce AC load by 20-30%",
			"Use solar water heater to reduce electricity consumption",
			"Improve insulation to maintain cool temperatures",
		)
	}

	if p.AvgDailyKWh > 15 {
		recs = append(recs,
			"Switch to LED lights to reduce lighting energy by 80%",
			"Look for 5-star rated appliances for better efficiency",
			"Use timer-based water heaters",
		)
	}

	if p.HousingType == estimator.HousingTenement {
		recs = append(recs,
			"Consider rainwater harvesting to reduce water heating needs",
			"Plant trees around the house for natural cooling",
		)
	}

	recs = append(recs,
		"Use smart power strips to eliminate standby power consumption",
		"Set AC temperature to 24°C instead of lower temperatures",
	)

	return recs
}
