package document

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"team-showcase.backend/internal/config"
	"team-showcase.backend/internal/domain/entities"
	domainerrors "team-showcase.backend/internal/domain/errors"
)

// Runs against a real MongoDB when MONGODB_TEST_URI is set.
func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbName := fmt.Sprintf("team_showcase_test_%d", time.Now().UnixNano())
	store, err := Connect(ctx, config.MongoConfig{URI: uri, Database: dbName})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.client.Database(dbName).Drop(context.Background())
		_ = store.Close(context.Background())
	})
	return store
}

func TestStore_Integration(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()
	require.NoError(t, store.Ping(ctx))

	first, err := store.Profiles().GetOrCreate(ctx, entities.DefaultTeamProfile())
	require.NoError(t, err)
	second, err := store.Profiles().GetOrCreate(ctx, entities.TeamProfile{Name: "ignored"})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	tagline := "updated"
	profile, err := store.Profiles().Update(ctx, entities.TeamProfilePatch{Tagline: &tagline}, entities.DefaultTeamProfile())
	require.NoError(t, err)
	require.Equal(t, "updated", profile.Tagline)
	require.Equal(t, first.Name, profile.Name)

	now := time.Now()
	m := &entities.Member{Name: "Alice", Role: "Web", IsActive: true, JoinDate: now, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Members().Create(ctx, m))
	inactive := false
	updated, err := store.Members().Update(ctx, m.ID, entities.MemberPatch{IsActive: &inactive})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.Equal(t, "Alice", updated.Name)

	active, err := store.Members().List(ctx, entities.MemberFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Empty(t, active)
	_, err = store.Members().Delete(ctx, m.ID)
	require.NoError(t, err)
	_, err = store.Members().GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	app := &entities.Application{Name: "A", Email: "a@b.com", Skills: "web", Status: entities.ApplicationStatusPending, SubmittedAt: now}
	require.NoError(t, store.Applications().Create(ctx, app))
	reviewed, err := store.Applications().Review(ctx, app.ID, entities.ApplicationReview{Status: entities.ApplicationStatusApproved, ReviewedAt: now})
	require.NoError(t, err)
	require.True(t, reviewed.ReviewedAt.Valid)

	pending := entities.ApplicationStatusPending
	n, err := store.Applications().Count(ctx, entities.ApplicationFilter{Status: &pending})
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}
