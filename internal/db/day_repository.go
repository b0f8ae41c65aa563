package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DayRepository struct {
	db *gorm.DB
}

func NewDayRepository(db *gorm.DB) *DayRepository {
	return &DayRepository{db: db}
}

// Upsert records a day entry, overwriting a previous entry for the same
// session and day. Re-recording a day is how the user corrects a temperature.
func (r *DayRepository) Upsert(entry *DayEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "session_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"temperature_c", "lighting", "fan_ac", "appliances",
			"water_heater", "refrigerator", "total", "updated_at",
		}),
	}).Create(entry).Error
}

// ListBySession returns a session's entries in weekday order.
func (r *DayRepository) ListBySession(sessionID string) ([]DayEntry, error) {
	var entries []DayEntry
	err := r.db.
		Where("session_id = ?", sessionID).
		Order("day_index").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
