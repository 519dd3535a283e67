package usecases

import (
	"context"
	"time"

	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/domain/repositories"
)

const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
)

// Health is the liveness report for the configured store.
type Health struct {
	Status    string    `json:"status"`
	Store     string    `json:"store"`
	Connected bool      `json:"connected"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// StatsUsecase aggregates counts and reports store connectivity.
type StatsUsecase struct {
	store repositories.Store
	now   func() time.Time
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(store repositories.Store) *StatsUsecase {
	return &StatsUsecase{store: store, now: time.Now}
}

// GetStats counts active members, achievements, all applications and pending applications.
func (u *StatsUsecase) GetStats(ctx context.Context) (*entities.Stats, error) {
	const failed = "failed to get stats"

	members, err := u.store.Members().CountActive(ctx)
	if err != nil {
		return nil, storeError(err, failed, failed)
	}
	achievements, err := u.store.Achievements().Count(ctx)
	if err != nil {
		return nil, storeError(err, failed, failed)
	}
	applications, err := u.store.Applications().Count(ctx, entities.ApplicationFilter{})
	if err != nil {
		return nil, storeError(err, failed, failed)
	}
	pendingStatus := entities.ApplicationStatusPending
	pending, err := u.store.Applications().Count(ctx, entities.ApplicationFilter{Status: &pendingStatus})
	if err != nil {
		return nil, storeError(err, failed, failed)
	}

	return &entities.Stats{
		Members:             members,
		Achievements:        achievements,
		Applications:        applications,
		PendingApplications: pending,
	}, nil
}

// Health pings the store. A failed ping is reported, not returned as an error.
func (u *StatsUsecase) Health(ctx context.Context) *Health {
	h := &Health{
		Status:    HealthStatusOK,
		Store:     u.store.Name(),
		Connected: true,
		Timestamp: u.now().UTC(),
	}
	if err := u.store.Ping(ctx); err != nil {
		h.Status = HealthStatusDegraded
		h.Connected = false
		h.Error = err.Error()
	}
	return h
}
