package db

import "time"

// Session is one tracked week: the housing configuration chosen by the user.
type Session struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	HousingType string    `gorm:"type:varchar(16)" json:"housing_type"`
	RoomConfig  string    `gorm:"type:varchar(8)" json:"room_config"`
	CreatedAt   time.Time `json:"created_at"`
}

// DayEntry is one recorded day inside a session. The breakdown is stored
// denormalized so listings and reports need no recomputation.
type DayEntry struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	SessionID    string    `gorm:"type:varchar(36);uniqueIndex:idx_session_day" json:"session_id"`
	Day          string    `gorm:"type:varchar(16);uniqueIndex:idx_session_day" json:"day"`
	DayIndex     int       `json:"-"` // Monday = 0, used for ordering
	TemperatureC float64   `json:"temperature_c"`
	Lighting     float64   `json:"lighting"`
	FanAC        float64   `json:"fan_ac"`
	Appliances   float64   `json:"appliances"`
	WaterHeater  float64   `json:"water_heater"`
	Refrigerator float64   `json:"refrigerator"`
	Total        float64   `json:"total"`
	UpdatedAt    time.Time `json:"updated_at"`
}
