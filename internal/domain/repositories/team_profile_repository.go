package repositories

import (
	"context"

	"team-showcase.backend/internal/domain/entities"
)

// TeamProfileRepository owns the singleton profile. Both methods create the profile
// from defaults when none exists yet.
type TeamProfileRepository interface {
	GetOrCreate(ctx context.Context, defaults entities.TeamProfile) (*entities.TeamProfile, error)
	Update(ctx context.Context, patch entities.TeamProfilePatch, defaults entities.TeamProfile) (*entities.TeamProfile, error)
}
