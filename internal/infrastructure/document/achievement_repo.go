package document

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/pkg/utils"
)

var achievementSort = bson.D{{Key: "year", Value: -1}, {Key: "created_at", Value: -1}}

type AchievementRepository struct {
	coll *mongo.Collection
}

func NewAchievementRepository(coll *mongo.Collection) *AchievementRepository {
	return &AchievementRepository{coll: coll}
}

func (r *AchievementRepository) Create(ctx context.Context, achievement *entities.Achievement) error {
	utils.EnsureID(&achievement.ID)
	_, err := r.coll.InsertOne(ctx, achievementToDoc(achievement))
	return err
}

func (r *AchievementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	var doc achievementDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return achievementFromDoc(&doc), nil
}

func (r *AchievementRepository) List(ctx context.Context) ([]*entities.Achievement, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(achievementSort))
	if err != nil {
		return nil, err
	}
	var docs []achievementDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*entities.Achievement, 0, len(docs))
	for i := range docs {
		items = append(items, achievementFromDoc(&docs[i]))
	}
	return items, nil
}

func (r *AchievementRepository) Update(ctx context.Context, id uuid.UUID, patch entities.AchievementPatch) (*entities.Achievement, error) {
	var doc achievementDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(id),
		bson.M{"$set": updateSet(fieldmap.Achievement, patch.Fields(), time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateErr(err)
	}
	return achievementFromDoc(&doc), nil
}

func (r *AchievementRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Achievement, error) {
	var doc achievementDoc
	if err := r.coll.FindOneAndDelete(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return achievementFromDoc(&doc), nil
}

func (r *AchievementRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
