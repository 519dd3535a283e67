// Package document is the MongoDB backend. Records are stored with their UUID as a
// string _id and snake_case field names.
package document

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"team-showcase.backend/internal/config"
	domainerrors "team-showcase.backend/internal/domain/errors"
	"team-showcase.backend/internal/domain/repositories"
)

const BackendName = "document"

const (
	profilesCollection     = "team_profiles"
	membersCollection      = "members"
	achievementsCollection = "achievements"
	applicationsCollection = "applications"
)

type Store struct {
	client       *mongo.Client
	profiles     *TeamProfileRepository
	members      *MemberRepository
	achievements *AchievementRepository
	applications *ApplicationRepository
}

var _ repositories.Store = (*Store)(nil)

// Connect dials MongoDB and prepares the collections' indexes.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	store := NewStore(client, cfg.Database)
	if err := store.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return store, nil
}

func NewStore(client *mongo.Client, database string) *Store {
	db := client.Database(database)
	return &Store{
		client:       client,
		profiles:     NewTeamProfileRepository(db.Collection(profilesCollection)),
		members:      NewMemberRepository(db.Collection(membersCollection)),
		achievements: NewAchievementRepository(db.Collection(achievementsCollection)),
		applications: NewApplicationRepository(db.Collection(applicationsCollection)),
	}
}

// EnsureIndexes creates the singleton guard and the sort indexes used by listings.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{s.profiles.coll, mongo.IndexModel{Keys: bson.D{{Key: "singleton", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{s.members.coll, mongo.IndexModel{Keys: bson.D{{Key: "join_date", Value: -1}, {Key: "created_at", Value: -1}}}},
		{s.achievements.coll, mongo.IndexModel{Keys: bson.D{{Key: "year", Value: -1}, {Key: "created_at", Value: -1}}}},
		{s.applications.coll, mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}}},
	}
	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

func (s *Store) Profiles() repositories.TeamProfileRepository { return s.profiles }
func (s *Store) Members() repositories.MemberRepository { return s.members }
func (s *Store) Achievements() repositories.AchievementRepository { return s.achievements }
func (s *Store) Applications() repositories.ApplicationRepository { return s.applications }

func (s *Store) Name() string {
	return BackendName
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func translateErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domainerrors.ErrNotFound
	}
	return err
}
