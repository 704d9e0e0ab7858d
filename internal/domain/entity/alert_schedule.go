package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFireAt is the alert time used for farms with no stored schedule.
const DefaultFireAt = "21:00"

// AlertSchedule is a farm's configured daily alert time. One row per farm,
// upsert semantics; an absent row means DefaultFireAt.
type AlertSchedule struct {
	FarmID    uuid.UUID // The farm the schedule belongs to.
	FireAt    string    // Farm-local time of day in "HH:MM" form.
	UpdatedAt time.Time // Timestamp of the last schedule change.
}

// ParseFireAt validates an "HH:MM" time-of-day string and returns the hour
// and minute components.
func ParseFireAt(fireAt string) (hour, minute int, err error) {
	parsed, err := time.Parse("15:04", fireAt)
	if err != nil {
		return 0, 0, err
	}

	return parsed.Hour(), parsed.Minute(), nil
}
