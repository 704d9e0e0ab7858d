package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
type NotificationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmID          uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:text;not null"`
	Message         string    `gorm:"type:text;not null"`
	IsRead          bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
