package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
)

type ApplicationRepository interface {
	Create(ctx context.Context, app *entities.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	List(ctx context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error)
	Review(ctx context.Context, id uuid.UUID, review entities.ApplicationReview) (*entities.Application, error)
	Delete(ctx context.Context, id uuid.UUID) (*entities.Application, error)
	Count(ctx context.Context, filter entities.ApplicationFilter) (int64, error)
}
