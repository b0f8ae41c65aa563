package service

import (
	"homewatt/internal/advisor"
	"homewatt/internal/estimator"
	"homewatt/internal/tariff"
)

// DailyEstimate is the one-shot estimate the dashboard shows for a single
// day: breakdown, weather text, money and a tip.
type DailyEstimate struct {
	HousingType  estimator.HousingType    `json:"housing_type"`
	RoomConfig   estimator.RoomConfig     `json:"room_config"`
	TemperatureC float64                  `json:"temperature_c"`
	Weather      string                   `json:"weather"`
	Breakdown    estimator.DailyBreakdown `json:"breakdown"`
	CostEstimate float64                  `json:"cost_estimate"`
	Tip          advisor.Tip              `json:"tip"`
}

// EstimateService wraps the pure core with tariff and advisory context.
type EstimateService struct {
	tariff tariff.Tariff
}

func NewEstimateService(t tariff.Tariff) *EstimateService {
	return &EstimateService{tariff: t}
}

// EstimateDaily computes a full daily estimate. estimator.ErrUnknownProfile
// passes through untouched for unsupported configurations.
func (s *EstimateService) EstimateDaily(housing estimator.HousingType, rooms estimator.RoomConfig, tempC float64) (*DailyEstimate, error) {
	breakdown, err := estimator.EstimateDaily(housing, rooms, tempC)
	if err != nil {
		return nil, err
	}

	return &DailyEstimate{
		HousingType:  housing,
		RoomConfig:   rooms,
		TemperatureC: tempC,
		Weather:      estimator.WeatherLabel(tempC),
		Breakdown:    breakdown,
		CostEstimate: s.tariff.Cost(breakdown.Total),
		Tip:          advisor.DailyTip(tempC),
	}, nil
}
