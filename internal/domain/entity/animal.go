package entity

import (
	"time"

	"github.com/google/uuid"
)

// Animal is a tracked unit belonging to a farm that is expected to check in
// once per day. The alert pipeline only reads identity fields; the record
// CRUD layer owns the rest of the animal's data.
type Animal struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the animal.
	FarmID    uuid.UUID // The farm this animal belongs to.
	Name      string    // Human-readable display name.
	Tag       string    // Physical ear-tag or collar identifier.
	CreatedAt time.Time // Timestamp of when this animal was registered.
	UpdatedAt time.Time // Timestamp of the last modification.
}
