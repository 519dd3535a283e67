package repositories

import (
	"context"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entities.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error)
	List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error)
	Update(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error)
	Delete(ctx context.Context, id uuid.UUID) (*entities.Member, error)
	CountActive(ctx context.Context) (int64, error)
}
