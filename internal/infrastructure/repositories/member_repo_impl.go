package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/infrastructure/models"
	"team-showcase.backend/pkg/utils"
)

type MemberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	utils.EnsureID(&member.ID)
	m := r.toModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	var m models.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	var ms []models.Member
	query := r.db.WithContext(ctx).Model(&models.Member{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Order("join_date DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Member, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *MemberRepository) Update(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error) {
	updates := fieldmap.Member.ToStorage(patch.Fields())
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&models.Member{}, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return existing, nil
}

func (r *MemberRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Member{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MemberRepository) toEntity(m *models.Member) *entities.Member {
	return &entities.Member{
		ID:        m.ID,
		Name:      m.Name,
		Role:      m.Role,
		Avatar:    m.Avatar,
		Signature: m.Signature,
		Blog:      m.Blog,
		Direction: m.Direction,
		IsActive:  m.IsActive,
		JoinDate:  m.JoinDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *MemberRepository) toModel(e *entities.Member) *models.Member {
	return &models.Member{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Avatar:    e.Avatar,
		Signature: e.Signature,
		Blog:      e.Blog,
		Direction: e.Direction,
		IsActive:  e.IsActive,
		JoinDate:  e.JoinDate,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
