package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	domainrepos "team-showcase.backend/internal/domain/repositories"
	"team-showcase.backend/internal/infrastructure/models"
)

const BackendName = "relational"

// Store is the gorm-backed backend. It runs on sqlite or postgres.
type Store struct {
	db           *gorm.DB
	profiles     *TeamProfileRepository
	members      *MemberRepository
	achievements *AchievementRepository
	applications *ApplicationRepository
}

var _ domainrepos.Store = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		profiles:     NewTeamProfileRepository(db),
		members:      NewMemberRepository(db),
		achievements: NewAchievementRepository(db),
		applications: NewApplicationRepository(db),
	}
}

// Migrate creates or updates every table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func (s *Store) Profiles() domainrepos.TeamProfileRepository { return s.profiles }
func (s *Store) Members() domainrepos.MemberRepository { return s.members }
func (s *Store) Achievements() domainrepos.AchievementRepository { return s.achievements }
func (s *Store) Applications() domainrepos.ApplicationRepository { return s.applications }

func (s *Store) Name() string {
	return BackendName
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(_ context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
