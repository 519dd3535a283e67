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

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *entities.Achievement) error {
	utils.EnsureID(&achievement.ID)
	m := r.toModel(achievement)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	achievement.CreatedAt = m.CreatedAt
	achievement.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *AchievementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	var m models.Achievement
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *AchievementRepository) List(ctx context.Context) ([]*entities.Achievement, error) {
	var ms []models.Achievement
	if err := r.db.WithContext(ctx).Order("year DESC, created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Achievement, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *AchievementRepository) Update(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error) {
	updates := fieldmap.Achievement.ToStorage(patch.Fields())
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&models.Achievement{}).
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

func (r *AchievementRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&models.Achievement{}, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return existing, nil
}

func (r *AchievementRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Achievement{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AchievementRepository) toEntity(m *models.Achievement) *entities.Achievement {
	return &entities.Achievement{
		ID:          m.ID,
		Year:        m.Year,
		Title:       m.Title,
		Award:       m.Award,
		Description: m.Description,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *AchievementRepository) toModel(e *entities.Achievement) *models.Achievement {
	return &models.Achievement{
		ID:          e.ID,
		Year:        e.Year,
		Title:       e.Title,
		Award:       e.Award,
		Description: e.Description,
		Location:    e.Location,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
