package document

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/pkg/utils"
)

var singletonFilter = bson.M{"singleton": true}

type TeamProfileRepository struct {
	coll *mongo.Collection
}

func NewTeamProfileRepository(coll *mongo.Collection) *TeamProfileRepository {
	return &TeamProfileRepository{coll: coll}
}

func (r *TeamProfileRepository) GetOrCreate(ctx context.Context, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	doc, err := r.ensure(ctx, defaults)
	if err != nil {
		return nil, err
	}
	return profileFromDoc(doc), nil
}

func (r *TeamProfileRepository) Update(ctx context.Context, patch entities.TeamProfilePatch, defaults entities.TeamProfile) (*entities.TeamProfile, error) {
	if _, err := r.ensure(ctx, defaults); err != nil {
		return nil, err
	}

	var out profileDoc
	err := r.coll.FindOneAndUpdate(ctx, singletonFilter,
		bson.M{"$set": updateSet(fieldmap.Profile, patch.Fields(), time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, translateErr(err)
	}
	return profileFromDoc(&out), nil
}

// ensure upserts the singleton. $setOnInsert leaves an existing profile untouched.
func (r *TeamProfileRepository) ensure(ctx context.Context, defaults entities.TeamProfile) (*profileDoc, error) {
	now := time.Now()
	var out profileDoc
	err := r.coll.FindOneAndUpdate(ctx, singletonFilter,
		bson.M{"$setOnInsert": profileInsert(defaults, now)},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, translateErr(err)
	}
	return &out, nil
}

func profileInsert(defaults entities.TeamProfile, now time.Time) bson.M {
	return bson.M{
		"_id":           utils.GenerateUUIDv7().String(),
		"name":          defaults.Name,
		"description":   defaults.Description,
		"founded":       defaults.Founded,
		"logo":          defaults.Logo,
		"tagline":       defaults.Tagline,
		"contact_email": defaults.ContactEmail,
		"created_at":    now,
		"updated_at":    now,
	}
}

// updateSet builds a $set document from wire-keyed fields and stamps updated_at.
func updateSet(mapper *fieldmap.Mapper, fields map[string]any, now time.Time) bson.M {
	set := bson.M(mapper.ToStorage(fields))
	set["updated_at"] = now
	return set
}
