package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year        int       `gorm:"not null;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Award       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Achievement) TableName() string {
	return "achievements"
}
