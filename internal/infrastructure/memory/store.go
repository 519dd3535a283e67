// Package memory is the process-local mock backend. Records live in maps guarded by
// a single RWMutex and are copied on the way in and out so callers never share state.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/domain/repositories"
	"team-showcase.backend/pkg/utils"
)

const BackendName = "memory"

type Store struct {
	mu           sync.RWMutex
	profile      *entities.TeamProfile
	members      map[uuid.UUID]entities.Member
	achievements map[uuid.UUID]entities.Achievement
	applications map[uuid.UUID]entities.Application
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		members:      make(map[uuid.UUID]entities.Member),
		achievements: make(map[uuid.UUID]entities.Achievement),
		applications: make(map[uuid.UUID]entities.Application),
		now:          time.Now,
	}
}

var _ repositories.Store = (*Store)(nil)

func (s *Store) Profiles() repositories.TeamProfileRepository { return &profileRepo{s} }
func (s *Store) Members() repositories.MemberRepository { return &memberRepo{s} }
func (s *Store) Achievements() repositories.AchievementRepository { return &achievementRepo{s} }
func (s *Store) Applications() repositories.ApplicationRepository { return &applicationRepo{s} }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }
func (s *Store) Name() string { return BackendName }
func (s *Store) Close(_ context.Context) error { return nil }

type profileRepo struct{ s *Store }

func (r *profileRepo) GetOrCreate(_ context.Context, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.createLocked(defaults)
	out := *r.s.profile
	return &out, nil
}

func (r *profileRepo) Update(_ context.Context, patch entities.TeamProfilePatch, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.createLocked(defaults)
	patch.Apply(r.s.profile)
	r.s.profile.UpdatedAt = r.s.now()
	out := *r.s.profile
	return &out, nil
}

func (r *profileRepo) createLocked(defaults entities.TeamProfile) {
	if r.s.profile != nil {
		return
	}
	profile := defaults
	profile.ID = uuid.Nil
	utils.EnsureID(&profile.ID)
	now := r.s.now()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	r.s.profile = &profile
}

type memberRepo struct{ s *Store }

func (r *memberRepo) Create(_ context.Context, member *entities.Member) error {
	utils.EnsureID(&member.ID)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.members[member.ID] = *member
	return nil
}

func (r *memberRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.members[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &m, nil
}

func (r *memberRepo) List(_ context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entities.Member, 0, len(r.s.members))
	for _, m := range r.s.members {
		if filter.ActiveOnly && !m.IsActive {
			continue
		}
		m := m
		out = append(out, &m)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinDate.Equal(out[j].JoinDate) {
			return out[i].JoinDate.After(out[j].JoinDate)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memberRepo) Update(_ context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	patch.Apply(&m)
	m.UpdatedAt = r.s.now()
	r.s.members[id] = m
	return &m, nil
}

func (r *memberRepo) Delete(_ context.Context, id uuid.UUID) (*entities.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.members[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	delete(r.s.members, id)
	return &m, nil
}

func (r *memberRepo) CountActive(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, m := range r.s.members {
		if m.IsActive {
			n++
		}
	}
	return n, nil
}

type achievementRepo struct{ s *Store }

func (r *achievementRepo) Create(_ context.Context, a *entities.Achievement) error {
	utils.EnsureID(&a.ID)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.achievements[a.ID] = *a
	return nil
}

func (r *achievementRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Achievement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.achievements[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &a, nil
}

func (r *achievementRepo) List(_ context.Context) ([]*entities.Achievement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entities.Achievement, 0, len(r.s.achievements))
	for _, a := range r.s.achievements {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *achievementRepo) Update(_ context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.achievements[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	patch.Apply(&a)
	a.UpdatedAt = r.s.now()
	r.s.achievements[id] = a
	return &a, nil
}

func (r *achievementRepo) Delete(_ context.Context, id uuid.UUID) (*entities.Achievement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.achievements[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	delete(r.s.achievements, id)
	return &a, nil
}

func (r *achievementRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.achievements)), nil
}

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(_ context.Context, app *entities.Application) error {
	utils.EnsureID(&app.ID)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.applications[app.ID] = *app
	return nil
}

func (r *applicationRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return &app, nil
}

func (r *applicationRepo) List(_ context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entities.Application, 0, len(r.s.applications))
	for _, app := range r.s.applications {
		if !filter.Matches(&app) {
			continue
		}
		app := app
		out = append(out, &app)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (r *applicationRepo) Review(_ context.Context, id uuid.UUID, review entities.ApplicationReview) (*entities.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	review.Apply(&app)
	r.s.applications[id] = app
	return &app, nil
}

func (r *applicationRepo) Delete(_ context.Context, id uuid.UUID) (*entities.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	app, ok := r.s.applications[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	delete(r.s.applications, id)
	return &app, nil
}

func (r *applicationRepo) Count(_ context.Context, filter entities.ApplicationFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var n int64
	for _, app := range r.s.applications {
		if filter.Matches(&app) {
			n++
		}
	}
	return n, nil
}
