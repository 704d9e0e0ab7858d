package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DashboardOverview is the cached per-farm aggregate the invalidator exists
// for. Cache contents are never authoritative; a stale read is repaired on
// the next recompute.
type DashboardOverview struct {
	FarmID        uuid.UUID `json:"farm_id"`
	Day           string    `json:"day"` // Farm-local day, YYYY-MM-DD.
	RosterSize    int       `json:"roster_size"`
	ReturnedToday int       `json:"returned_today"`
	MissingToday  int       `json:"missing_today"`
	UnreadAlerts  int64     `json:"unread_alerts"`
}

// DashboardUsecase serves the read-through overview aggregate.
type DashboardUsecase interface {
	// GetOverview returns the farm's overview, from cache when fresh,
	// recomputed and re-cached otherwise.
	GetOverview(ctx context.Context, farmID uuid.UUID) (*DashboardOverview, error)
}
