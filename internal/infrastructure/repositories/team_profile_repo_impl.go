package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/internal/infrastructure/models"
	"team-showcase.backend/pkg/utils"
)

type TeamProfileRepository struct {
	db *gorm.DB
}

func NewTeamProfileRepository(db *gorm.DB) *TeamProfileRepository {
	return &TeamProfileRepository{db: db}
}

func (r *TeamProfileRepository) GetOrCreate(ctx context.Context, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	m, err := r.ensure(ctx, defaults)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

func (r *TeamProfileRepository) Update(ctx context.Context, patch entities.TeamProfilePatch, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	if _, err := r.ensure(ctx, defaults); err != nil {
		return nil, err
	}

	updates := fieldmap.Profile.ToStorage(patch.Fields())
	updates["updated_at"] = time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.TeamProfile{}).
		Where("singleton = ?", true).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}

	m, err := r.find(ctx)
	if err != nil {
		return nil, err
	}
	return r.toEntity(m), nil
}

// ensure returns the singleton row, inserting it from defaults first when absent.
// Concurrent first reads race on the unique singleton index and the loser's insert
// is skipped.
func (r *TeamProfileRepository) ensure(ctx context.Context, defaults entities.TeamProfile) (*models.TeamProfile, error) {
	m, err := r.find(ctx)
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	seed := r.toModel(&defaults)
	seed.ID = utils.GenerateUUIDv7()
	seed.Singleton = true
	now := time.Now()
	seed.CreatedAt = now
	seed.UpdatedAt = now
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "singleton"}}, DoNothing: true}).
		Create(seed).Error; err != nil {
		return nil, err
	}
	return r.find(ctx)
}

func (r *TeamProfileRepository) find(ctx context.Context) (*models.TeamProfile, error) {
	var m models.TeamProfile
	if err := r.db.WithContext(ctx).Where("singleton = ?", true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *TeamProfileRepository) toEntity(m *models.TeamProfile) *entities.TeamProfile {
	return &entities.TeamProfile{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		Founded:      m.Founded,
		Logo:         m.Logo,
		Tagline:      m.Tagline,
		ContactEmail: m.ContactEmail,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *TeamProfileRepository) toModel(e *entities.TeamProfile) *models.TeamProfile {
	return &models.TeamProfile{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Founded:      e.Founded,
		Logo:         e.Logo,
		Tagline:      e.Tagline,
		ContactEmail: e.ContactEmail,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
