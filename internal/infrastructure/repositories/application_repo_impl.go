package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/infrastructure/models"
	"team-showcase.backend/pkg/utils"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	utils.EnsureID(&app.ID)
	return r.db.WithContext(ctx).Create(r.toModel(app)).Error
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var m models.Application
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error) {
	var ms []models.Application
	if err := r.filtered(ctx, filter).Order("submitted_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Application, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ApplicationRepository) Review(ctx context.Context, id uuid.UUID, review entities.ApplicationReview) (*entities.Application, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Updates(fieldmap.Application.ToStorage(review.Fields()))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	result := r.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return existing, nil
}

func (r *ApplicationRepository) Count(ctx context.Context, filter entities.ApplicationFilter) (int64, error) {
	var count int64
	if err := r.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ApplicationRepository) filtered(ctx context.Context, filter entities.ApplicationFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.Application{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	return query
}

func (r *ApplicationRepository) toEntity(m *models.Application) *entities.Application {
	return &entities.Application{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Skills:      m.Skills,
		Message:     m.Message,
		Status:      entities.ApplicationStatus(m.Status),
		SubmittedAt: m.SubmittedAt,
		ReviewedAt:  null.TimeFromPtr(m.ReviewedAt),
		ReviewNotes: m.ReviewNotes,
	}
}

func (r *ApplicationRepository) toModel(e *entities.Application) *models.Application {
	return &models.Application{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Skills:      e.Skills,
		Message:     e.Message,
		Status:      string(e.Status),
		SubmittedAt: e.SubmittedAt,
		ReviewedAt:  e.ReviewedAt.Ptr(),
		ReviewNotes: e.ReviewNotes,
	}
}
