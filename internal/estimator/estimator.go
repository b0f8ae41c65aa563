// Package estimator is the computational core of homewatt: pure, stateless
// mappings from a housing configuration and a daily temperature to an energy
// breakdown, plus aggregation over a week of breakdowns. It performs no I/O
// and is safe for concurrent use; the profile and band tables are fixed at
// load time.
package estimator

import "errors"

var (
	// ErrUnknownProfile is returned when the housing configuration is
	// outside the supported table.
	ErrUnknownProfile = errors.New("unknown housing configuration")
	// ErrEmptyWeek is returned when a summary is requested over no records.
	ErrEmptyWeek = errors.New("no day records to summarize")
)

// DailyBreakdown is one day's estimated consumption per category, in kWh.
// Total always equals the sum of the five category fields.
type DailyBreakdown struct {
	Lighting     float64 `json:"lighting"`
	FanAC        float64 `json:"fan_ac"`
	Appliances   float64 `json:"appliances"`
	WaterHeater  float64 `json:"water_heater"`
	Refrigerator float64 `json:"refrigerator"`
	Total        float64 `json:"total"`
}

// EstimateDaily computes the breakdown for one day. Only the fan/AC category
// varies with temperature; the rest come straight from the base profile.
func EstimateDaily(housing HousingType, rooms RoomConfig, tempC float64) (DailyBreakdown, error) {
	base, ok := LookupBaseProfile(housing, rooms)
	if !ok {
		return DailyBreakdown{}, ErrUnknownProfile
	}

	b := DailyBreakdown{
		Lighting:     base.Lighting,
		FanAC:        base.FanAC * WeatherMultiplier(tempC),
		Appliances:   base.Appliances,
		WaterHeater:  base.WaterHeater,
		Refrigerator: base.Refrigerator,
	}
	b.Total = b.Lighting + b.FanAC + b.Appliances + b.WaterHeater + b.Refrigerator
	return b, nil
}

// Weekday labels the days of the tracked week.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var week = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Week returns the seven weekday labels in order, Monday first.
func Week() []Weekday {
	out := make([]Weekday, len(week))
	copy(out, week)
	return out
}

// ParseWeekday matches a label against the known weekdays.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range week {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}

// WeekdayIndex returns the position of a day within the week, Monday = 0,
// or -1 for an unknown label.
func WeekdayIndex(d Weekday) int {
	for i, w := range week {
		if w == d {
			return i
		}
	}
	return -1
}

// DayRecord pairs a day label with its breakdown, as fed to SummarizeWeek.
type DayRecord struct {
	Day       Weekday        `json:"day"`
	Breakdown DailyBreakdown `json:"breakdown"`
}

// WeeklySummary aggregates an ordered run of day records.
type WeeklySummary struct {
	Days         int     `json:"days"`
	TotalKWh     float64 `json:"total_kwh"`
	AverageKWh   float64 `json:"average_kwh"`
	PeakDay      Weekday `json:"peak_day"`
	PeakDayTotal float64 `json:"peak_day_total"`
}

// SummarizeWeek totals a sequence of day records. A full week has seven
// entries but any non-empty length is accepted, with the average taken over
// the actual count. On ties the earliest peak day wins.
func SummarizeWeek(records []DayRecord) (WeeklySummary, error) {
	if len(records) == 0 {
		return WeeklySummary{}, ErrEmptyWeek
	}

	s := WeeklySummary{
		Days:         len(records),
		PeakDay:      records[0].Day,
		PeakDayTotal: records[0].Breakdown.Total,
	}
	for _, r := range records {
		s.TotalKWh += r.Breakdown.Total
		if r.Breakdown.Total > s.PeakDayTotal {
			s.PeakDay = r.Day
			s.PeakDayTotal = r.Breakdown.Total
		}
	}
	s.AverageKWh = s.TotalKWh / float64(len(records))
	return s, nil
}
