package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
)

type AchievementRepository interface {
	Create(ctx context.Context, achievement *entities.Achievement) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Achievement, error)
	List(ctx context.Context) ([]*entities.Achievement, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error)
	Delete(ctx context.Context, id uuid.UUID) (*entities.Achievement, error)
	Count(ctx context.Context) (int64, error)
}
