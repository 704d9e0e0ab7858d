// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm is an isolated customer account. All records, schedules and alerts
// belong to exactly one farm; farms never see each other's data.
type Farm struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the farm.
	OwnerUserID  uuid.UUID // The account that owns the farm and receives its alerts.
	Name         string    // The farm's display name.
	ContactEmail string    // The responsible contact that receives return alerts.
	Timezone     string    // IANA timezone name used to resolve the farm-local calendar day.
	CreatedAt    time.Time // Timestamp of when this farm account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this farm's data.
}

// Location returns the farm's time.Location, falling back to UTC when the
// configured timezone name does not resolve.
func (f *Farm) Location() *time.Location {
	if f.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
