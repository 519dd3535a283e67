package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/domain/repositories"
	"team-showcase.backend/pkg/redis"
)

// Mock TeamProfileRepository
type MockTeamProfileRepository struct {
	mock.Mock
}

func (m *MockTeamProfileRepository) GetOrCreate(ctx context.Context, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	args := m.Called(ctx, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamProfile), args.Error(1)
}

func (m *MockTeamProfileRepository) Update(ctx context.Context, patch entities.TeamProfilePatch, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	args := m.Called(ctx, patch, defaults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TeamProfile), args.Error(1)
}

// Mock MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(ctx context.Context, member *entities.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) Update(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Member), args.Error(1)
}

func (m *MockMemberRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AchievementRepository
type MockAchievementRepository struct {
	mock.Mock
}

func (m *MockAchievementRepository) Create(ctx context.Context, a *entities.Achievement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAchievementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) List(ctx context.Context) ([]*entities.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Update(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Achievement), args.Error(1)
}

func (m *MockAchievementRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock ApplicationRepository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) List(ctx context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) Review(ctx context.Context, id uuid.UUID, review entities.ApplicationReview) (*entities.Application, error) {
	args := m.Called(ctx, id, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Application), args.Error(1)
}

func (m *MockApplicationRepository) Count(ctx context.Context, filter entities.ApplicationFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// Mock Store
type MockStore struct {
	mock.Mock
	profiles     *MockTeamProfileRepository
	members      *MockMemberRepository
	achievements *MockAchievementRepository
	applications *MockApplicationRepository
}

func NewMockStore() *MockStore {
	return &MockStore{
		profiles:     new(MockTeamProfileRepository),
		members:      new(MockMemberRepository),
		achievements: new(MockAchievementRepository),
		applications: new(MockApplicationRepository),
	}
}

func (m *MockStore) Profiles() repositories.TeamProfileRepository { return m.profiles }
func (m *MockStore) Members() repositories.MemberRepository { return m.members }
func (m *MockStore) Achievements() repositories.AchievementRepository { return m.achievements }
func (m *MockStore) Applications() repositories.ApplicationRepository { return m.applications }
func (m *MockStore) Name() string { return "mock" }

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) Close(ctx context.Context) error {
	return nil
}

// Mock AdminSessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	args := m.Called(ctx, sessionID, data, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*redis.SessionData), args.Error(1)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
