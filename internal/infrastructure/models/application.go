package models

import (
	"time"

	"github.com/google/uuid"
)

type Application struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(120);not null"`
	Email       string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(64)"`
	Skills      string    `gorm:"type:text;not null"`
	Message     string    `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null;index"`
	SubmittedAt time.Time `gorm:"not null;index"`
	ReviewedAt  *time.Time
	ReviewNotes string `gorm:"type:text"`
}

func (Application) TableName() string {
	return "applications"
}
