package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
)

func TestMemberRepository_CRUDAndLists(t *testing.T) {
	store := newMigratedStore(t)
	repo := store.Members()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	alice := &entities.Member{Name: "Alice", Role: "Web", IsActive: true, JoinDate: base, CreatedAt: base, UpdatedAt: base}
	bob := &entities.Member{Name: "Bob", Role: "Pwn", IsActive: true, JoinDate: base.Add(24 * time.Hour), CreatedAt: base, UpdatedAt: base}
	carol := &entities.Member{Name: "Carol", Role: "Crypto", IsActive: false, JoinDate: base.Add(48 * time.Hour), CreatedAt: base, UpdatedAt: base}
	for _, m := range []*entities.Member{alice, bob, carol} {
		require.NoError(t, repo.Create(ctx, m))
		require.NotEqual(t, uuid.Nil, m.ID)
	}

	all, err := repo.List(ctx, entities.MemberFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "Carol", all[0].Name)
	require.Equal(t, "Bob", all[1].Name)
	require.Equal(t, "Alice", all[2].Name)

	active, err := repo.List(ctx, entities.MemberFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, m := range active {
		require.True(t, m.IsActive)
	}

	count, err := repo.CountActive(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	got, err := repo.GetByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "Web", got.Role)
}

func TestMemberRepository_PartialUpdateAndSoftDelete(t *testing.T) {
	store := newMigratedStore(t)
	repo := store.Members()
	ctx := context.Background()
	past := time.Now().Add(-time.Hour)

	m := &entities.Member{Name: "Alice", Role: "Web", IsActive: true, JoinDate: past, CreatedAt: past, UpdatedAt: past}
	require.NoError(t, repo.Create(ctx, m))

	sig := "x"
	updated, err := repo.Update(ctx, m.ID, entities.MemberPatch{Signature: &sig})
	require.NoError(t, err)
	require.Equal(t, "Alice", updated.Name)
	require.Equal(t, "Web", updated.Role)
	require.Equal(t, "x", updated.Signature)
	require.True(t, updated.UpdatedAt.After(past))

	inactive := false
	updated, err = repo.Update(ctx, m.ID, entities.MemberPatch{IsActive: &inactive})
	require.NoError(t, err)
	require.False(t, updated.IsActive)

	active, err := repo.List(ctx, entities.MemberFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := repo.List(ctx, entities.MemberFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestMemberRepository_HardDeleteAndNotFound(t *testing.T) {
	store := newMigratedStore(t)
	repo := store.Members()
	ctx := context.Background()

	m := &entities.Member{Name: "Alice", Role: "Web", IsActive: true, JoinDate: time.Now()}
	require.NoError(t, repo.Create(ctx, m))

	removed, err := repo.Delete(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, removed.ID)

	_, err = repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = repo.Delete(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	name := "x"
	_, err = repo.Update(ctx, m.ID, entities.MemberPatch{Name: &name})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMemberRepository_ErrorsWithoutTable(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, &entities.Member{Name: "A", Role: "B"}))
	_, err := repo.List(ctx, entities.MemberFilter{})
	require.Error(t, err)
	_, err = repo.CountActive(ctx)
	require.Error(t, err)
	_, err = repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	require.NotErrorIs(t, err, domainerrors.ErrNotFound)
}
