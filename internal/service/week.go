package service

import (
	"errors"
	"fmt"

	"homewatt/internal/advisor"
	"homewatt/internal/db"
	"homewatt/internal/estimator"
	"homewatt/internal/logger"
	"homewatt/internal/tariff"
)

// ErrUnknownDay is returned when a day label is not a weekday.
var ErrUnknownDay = errors.New("unknown weekday")

// WeekService tracks one week of temperatures per session and builds the
// weekly report over the recorded days.
type WeekService struct {
	sessions *db.SessionRepository
	days     *db.DayRepository
	tariff   tariff.Tariff
}

func NewWeekService(sessions *db.SessionRepository, days *db.DayRepository, t tariff.Tariff) *WeekService {
	return &WeekService{sessions: sessions, days: days, tariff: t}
}

// CreateSession validates the housing configuration against the profile
// table before storing the session.
func (s *WeekService) CreateSession(housing estimator.HousingType, rooms estimator.RoomConfig) (*db.Session, error) {
	if _, ok := estimator.LookupBaseProfile(housing, rooms); !ok {
		return nil, estimator.ErrUnknownProfile
	}

	session, err := s.sessions.Create(string(housing), string(rooms))
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	logger.Info("session %s created (%s/%s)", session.ID, housing, rooms)
	return session, nil
}

// RecordDay estimates one day for the session and stores (or overwrites) its
// entry. The estimate uses the housing configuration fixed at session
// creation, so it cannot miss the profile table.
func (s *WeekService) RecordDay(sessionID string, day estimator.Weekday, tempC float64) (*db.DayEntry, error) {
	if estimator.WeekdayIndex(day) < 0 {
		return nil, ErrUnknownDay
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	breakdown, err := estimator.EstimateDaily(
		estimator.HousingType(session.HousingType),
		estimator.RoomConfig(session.RoomConfig),
		tempC,
	)
	if err != nil {
		return nil, err
	}

	entry := &db.DayEntry{
		SessionID:    session.ID,
		Day:          string(day),
		DayIndex:     estimator.WeekdayIndex(day),
		TemperatureC: tempC,
		Lighting:     breakdown.Lighting,
		FanAC:        breakdown.FanAC,
		Appliances:   breakdown.Appliances,
		WaterHeater:  breakdown.WaterHeater,
		Refrigerator: breakdown.Refrigerator,
		Total:        breakdown.Total,
	}
	if err := s.days.Upsert(entry); err != nil {
		return nil, fmt.Errorf("record day: %w", err)
	}
	return entry, nil
}

// ListDays returns the session's recorded entries in weekday order.
func (s *WeekService) ListDays(sessionID string) ([]db.DayEntry, error) {
	if _, err := s.sessions.Get(sessionID); err != nil {
		return nil, err
	}
	return s.days.ListBySession(sessionID)
}

// DayReport is one row of the weekly report.
type DayReport struct {
	Day          estimator.Weekday        `json:"day"`
	TemperatureC float64                  `json:"temperature_c"`
	Weather      string                   `json:"weather"`
	Breakdown    estimator.DailyBreakdown `json:"breakdown"`
	Cost         float64                  `json:"cost"`
}

// WeeklyReport is the aggregate view over a session's recorded days.
type WeeklyReport struct {
	SessionID       string                  `json:"session_id"`
	HousingType     estimator.HousingType   `json:"housing_type"`
	RoomConfig      estimator.RoomConfig    `json:"room_config"`
	Days            []DayReport             `json:"days"`
	Summary         estimator.WeeklySummary `json:"summary"`
	AvgTemperatureC float64                 `json:"avg_temperature_c"`
	WeeklyCost      float64                 `json:"weekly_cost"`
	MonthlyCost     float64                 `json:"monthly_cost_projection"`
	Recommendations []string                `json:"recommendations"`
}

// WeeklyReport builds the report. A session with no recorded days yields
// estimator.ErrEmptyWeek; the caller decides how to surface that.
func (s *WeekService) WeeklyReport(sessionID string) (*WeeklyReport, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	entries, err := s.days.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, estimator.ErrEmptyWeek
	}

	records := make([]estimator.DayRecord, 0, len(entries))
	days := make([]DayReport, 0, len(entries))
	var tempSum float64
	for _, e := range entries {
		breakdown := estimator.DailyBreakdown{
			Lighting:     e.Lighting,
			FanAC:        e.FanAC,
			Appliances:   e.Appliances,
			WaterHeater:  e.WaterHeater,
			Refrigerator: e.Refrigerator,
			Total:        e.Total,
		}
		records = append(records, estimator.DayRecord{
			Day:       estimator.Weekday(e.Day),
			Breakdown: breakdown,
		})
		days = append(days, DayReport{
			Day:          estimator.Weekday(e.Day),
			TemperatureC: e.TemperatureC,
			Weather:      estimator.WeatherLabel(e.TemperatureC),
			Breakdown:    breakdown,
			Cost:         s.tariff.Cost(e.Total),
		})
		tempSum += e.TemperatureC
	}

	summary, err := estimator.SummarizeWeek(records)
	if err != nil {
		return nil, err
	}

	avgTemp := tempSum / float64(len(entries))
	return &WeeklyReport{
		SessionID:       session.ID,
		HousingType:     estimator.HousingType(session.HousingType),
		RoomConfig:      estimator.RoomConfig(session.RoomConfig),
		Days:            days,
		Summary:         summary,
		AvgTemperatureC: avgTemp,
		WeeklyCost:      s.tariff.Cost(summary.TotalKWh),
		MonthlyCost:     s.tariff.MonthlyProjection(summary.TotalKWh),
		Recommendations: advisor.WeeklyRecommendations(advisor.WeekProfile{
			AvgTempC:    avgTemp,
			AvgDailyKWh: summary.AverageKWh,
			HousingType: estimator.HousingType(session.HousingType),
		}),
	}, nil
}
