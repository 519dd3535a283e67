package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamProfile rows are keyed by a unique singleton flag so at most one exists,
// whatever ids earlier rows had.
type TeamProfile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Singleton    bool      `gorm:"not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(120);not null"`
	Description  string    `gorm:"type:text"`
	Founded      string    `gorm:"type:varchar(32)"`
	Logo         string    `gorm:"type:text"`
	Tagline      string    `gorm:"type:varchar(255)"`
	ContactEmail string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (TeamProfile) TableName() string {
	return "team_profiles"
}
