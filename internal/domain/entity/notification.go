package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a durable alert record for a farm. The alert pipeline only
// ever appends notifications; it never updates or deletes one it created.
// Read/unread state is mutated exclusively by the UI-facing endpoint.
type Notification struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the notification.
	FarmID          uuid.UUID // The farm this notification belongs to.
	RecipientUserID uuid.UUID // The user the notification is addressed to.
	Title           string    // Short alert title.
	Message         string    // Full alert body, names the missing animals.
	IsRead          bool      // Whether the recipient has opened the notification.
	CreatedAt       time.Time // Timestamp of when the notification was recorded.
}
