package usecases

import (
	"context"
	"strings"

	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/domain/repositories"
)

// TeamProfileUsecase reads and edits the singleton team profile.
type TeamProfileUsecase struct {
	profileRepo repositories.TeamProfileRepository
	defaults    entities.TeamProfile
}

// NewTeamProfileUsecase creates a new team profile usecase
func NewTeamProfileUsecase(profileRepo repositories.TeamProfileRepository) *TeamProfileUsecase {
	return &TeamProfileUsecase{
		profileRepo: profileRepo,
		defaults:    entities.DefaultTeamProfile(),
	}
}

// GetProfile returns the profile, creating it from defaults on first read.
func (u *TeamProfileUsecase) GetProfile(ctx context.Context) (*entities.TeamProfile, error) {
	profile, err := u.profileRepo.GetOrCreate(ctx, u.defaults)
	if err != nil {
		return nil, storeError(err, "team profile not found", "failed to get team profile")
	}
	return profile, nil
}

// UpdateProfile overwrites the fields present in patch. An empty patch only refreshes updatedAt.
func (u *TeamProfileUsecase) UpdateProfile(ctx context.Context, patch entities.TeamProfilePatch) (*entities.TeamProfile, error) {
	if err := trimPresent("name", patch.Name); err != nil {
		return nil, err
	}
	if patch.ContactEmail != nil {
		*patch.ContactEmail = strings.TrimSpace(*patch.ContactEmail)
		if *patch.ContactEmail != "" && !ValidEmail(*patch.ContactEmail) {
			return nil, domainerrors.BadRequest("invalid contact email")
		}
	}

	profile, err := u.profileRepo.Update(ctx, patch, u.defaults)
	if err != nil {
		return nil, storeError(err, "team profile not found", "failed to update team profile")
	}
	return profile, nil
}
