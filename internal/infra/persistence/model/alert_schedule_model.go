package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertScheduleModel is the GORM-specific struct for the 'alert_schedules'
// table. One row per farm; absence means the default fire time.
type AlertScheduleModel struct {
	FarmID    uuid.UUID `gorm:"type:uuid;primary_key"`
	FireAt    string    `gorm:"type:varchar(5);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertScheduleModel) TableName() string {
	return "alert_schedules"
}
