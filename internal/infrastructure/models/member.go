package models

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Role      string    `gorm:"type:varchar(120);not null"`
	Avatar    string    `gorm:"type:text"`
	Signature string    `gorm:"type:text"`
	Blog      string    `gorm:"type:text"`
	Direction string    `gorm:"type:varchar(120)"`
	IsActive  bool      `gorm:"not null;index"`
	JoinDate  time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Member) TableName() string {
	return "members"
}
