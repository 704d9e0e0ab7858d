package model

import (
	"time"

	"github.com/google/uuid"
)

// ReturnRecordModel is the GORM-specific struct for the 'return_records' table.
// The composite unique index enforces the at-most-one-record-per-day invariant
// at the storage layer; application writes go through ON CONFLICT DO UPDATE.
type ReturnRecordModel struct {
	FarmID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_return_records_farm_animal_date,priority:1"`
	AnimalID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_return_records_farm_animal_date,priority:2"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_return_records_farm_animal_date,priority:3"`
	Returned  bool      `gorm:"not null;default:false"`
	Reason    *string   `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReturnRecordModel) TableName() string {
	return "return_records"
}
