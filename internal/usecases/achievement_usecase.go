package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/domain/repositories"
)

const msgAchievementNotFound = "achievement not found"

// AchievementUsecase handles achievement business logic
type AchievementUsecase struct {
	achievementRepo repositories.AchievementRepository
	now             func() time.Time
}

// NewAchievementUsecase creates a new achievement usecase
func NewAchievementUsecase(achievementRepo repositories.AchievementRepository) *AchievementUsecase {
	return &AchievementUsecase{
		achievementRepo: achievementRepo,
		now:             time.Now,
	}
}

func (u *AchievementUsecase) ListAchievements(ctx context.Context) ([]*entities.Achievement, error) {
	items, err := u.achievementRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, msgAchievementNotFound, "failed to list achievements")
	}
	return items, nil
}

func (u *AchievementUsecase) GetAchievement(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	item, err := u.achievementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, msgAchievementNotFound, "failed to get achievement")
	}
	return item, nil
}

func (u *AchievementUsecase) CreateAchievement(ctx context.Context, input *entities.CreateAchievementInput) (*entities.Achievement, error) {
	missing := missingFields([]string{"title", "award"}, &input.Title, &input.Award)
	if input.Year == 0 {
		missing = append([]string{"year"}, missing...)
	}
	if len(missing) > 0 {
		return nil, requireFieldsError(missing)
	}
	if input.Year < 0 {
		return nil, domainerrors.BadRequest("year must be a positive integer")
	}

	now := u.now()
	item := &entities.Achievement{
		Year:        input.Year,
		Title:       input.Title,
		Award:       input.Award,
		Description: input.Description,
		Location:    input.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.achievementRepo.Create(ctx, item); err != nil {
		return nil, storeError(err, msgAchievementNotFound, "failed to create achievement")
	}
	return item, nil
}

func (u *AchievementUsecase) UpdateAchievement(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error) {
	if patch.Year != nil && *patch.Year <= 0 {
		return nil, domainerrors.BadRequest("year must be a positive integer")
	}
	if err := trimPresent("title", patch.Title); err != nil {
		return nil, err
	}
	if err := trimPresent("award", patch.Award); err != nil {
		return nil, err
	}

	item, err := u.achievementRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError(err, msgAchievementNotFound, "failed to update achievement")
	}
	return item, nil
}

// DeleteAchievement removes the achievement; there is no soft delete for achievements.
func (u *AchievementUsecase) DeleteAchievement(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	item, err := u.achievementRepo.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err, msgAchievementNotFound, "failed to delete achievement")
	}
	return item, nil
}
