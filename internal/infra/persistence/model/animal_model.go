package model

import (
	"time"

	"github.com/google/uuid"
)

// AnimalModel is the GORM-specific struct for the 'animals' table.
type AnimalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Tag       string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AnimalModel) TableName() string {
	return "animals"
}
