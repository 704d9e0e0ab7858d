package model

import (
	"time"

	"github.com/google/uuid"
)

// FarmModel is the GORM-specific struct for the 'farms' table.
type FarmModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerUserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:text;not null"`
	ContactEmail string    `gorm:"type:text;not null"`
	Timezone     string    `gorm:"type:text;not null;default:'UTC'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmModel) TableName() string {
	return "farms"
}
