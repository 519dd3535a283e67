package document

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"team-showcase.backend/internal/domain/entities"
	"team-showcase.backend/internal/infrastructure/fieldmap"
	"team-showcase.backend/pkg/utils"
)

var applicationSort = bson.D{{Key: "submitted_at", Value: -1}}

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(coll *mongo.Collection) *ApplicationRepository {
	return &ApplicationRepository{coll: coll}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *entities.Application) error {
	utils.EnsureID(&app.ID)
	_, err := r.coll.InsertOne(ctx, applicationToDoc(app))
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var doc applicationDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return applicationFromDoc(&doc), nil
}

func (r *ApplicationRepository) List(ctx context.Context, filter entities.ApplicationFilter) ([]*entities.Application, error) {
	cursor, err := r.coll.Find(ctx, applicationFilter(filter), options.Find().SetSort(applicationSort))
	if err != nil {
		return nil, err
	}
	var docs []applicationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*entities.Application, 0, len(docs))
	for i := range docs {
		items = append(items, applicationFromDoc(&docs[i]))
	}
	return items, nil
}

// Review sets status and reviewed_at; review_notes only when supplied.
func (r *ApplicationRepository) Review(ctx context.Context, id uuid.UUID, review entities.ApplicationReview) (*entities.Application, error) {
	var doc applicationDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(id),
		bson.M{"$set": bson.M(fieldmap.Application.ToStorage(review.Fields()))},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateErr(err)
	}
	return applicationFromDoc(&doc), nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Application, error) {
	var doc applicationDoc
	if err := r.coll.FindOneAndDelete(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return applicationFromDoc(&doc), nil
}

func (r *ApplicationRepository) Count(ctx context.Context, filter entities.ApplicationFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, applicationFilter(filter))
}

func applicationFilter(filter entities.ApplicationFilter) bson.M {
	if filter.Status != nil {
		return bson.M{"status": string(*filter.Status)}
	}
	return bson.M{}
}
