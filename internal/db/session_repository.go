package db

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSessionNotFound is returned for lookups of unknown session ids.
var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session with a generated id.
func (r *SessionRepository) Create(housingType, roomConfig string) (*Session, error) {
	s := &Session{
		ID:          uuid.NewString(),
		HousingType: housingType,
		RoomConfig:  roomConfig,
	}
	if err := r.db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// Get fetches a session by id.
func (r *SessionRepository) Get(id string) (*Session, error) {
	var s Session
	err := r.db.First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
