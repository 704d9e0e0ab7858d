package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReturnRecord is the durable fact of whether an animal checked in on a given
// calendar day. At most one record exists per (farm, animal, day); writers go
// through an upsert keyed on that triple, never a blind insert.
//
// The evaluator only reads these rows. Creation happens on the scan path
// (returned=true) or through an administrative correction; deletion is an
// explicit administrative action meaning "revert to unknown".
type ReturnRecord struct {
	FarmID    uuid.UUID // The farm the record belongs to.
	AnimalID  uuid.UUID // The animal that did (or did not) check in.
	Date      time.Time // Farm-local calendar day, truncated to midnight.
	Returned  bool      // Whether an affirmative check-in exists for the day.
	Reason    *string   // Optional note, typically set on corrections.
	CreatedAt time.Time // Timestamp of the first write for this key.
	UpdatedAt time.Time // Timestamp of the most recent write for this key.
}

// Day normalizes a timestamp to the calendar-day value stored on a
// ReturnRecord: midnight of the same date, location preserved.
func Day(ts time.Time) time.Time {
	year, month, day := ts.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, ts.Location())
}
