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

var memberSort = bson.D{{Key: "join_date", Value: -1}, {Key: "created_at", Value: -1}}

type MemberRepository struct {
	coll *mongo.Collection
}

func NewMemberRepository(coll *mongo.Collection) *MemberRepository {
	return &MemberRepository{coll: coll}
}

func (r *MemberRepository) Create(ctx context.Context, member *entities.Member) error {
	utils.EnsureID(&member.ID)
	_, err := r.coll.InsertOne(ctx, memberToDoc(member))
	return err
}

func (r *MemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	var doc memberDoc
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return memberFromDoc(&doc), nil
}

func (r *MemberRepository) List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	cursor, err := r.coll.Find(ctx, memberFilter(filter), options.Find().SetSort(memberSort))
	if err != nil {
		return nil, err
	}
	var docs []memberDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]*entities.Member, 0, len(docs))
	for i := range docs {
		items = append(items, memberFromDoc(&docs[i]))
	}
	return items, nil
}

func (r *MemberRepository) Update(ctx context.Context, id uuid.UUID, patch entities.MemberPatch) (*entities.Member, error) {
	var doc memberDoc
	err := r.coll.FindOneAndUpdate(ctx, byID(id),
		bson.M{"$set": updateSet(fieldmap.Member, patch.Fields(), time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, translateErr(err)
	}
	return memberFromDoc(&doc), nil
}

func (r *MemberRepository) Delete(ctx context.Context, id uuid.UUID) (*entities.Member, error) {
	var doc memberDoc
	if err := r.coll.FindOneAndDelete(ctx, byID(id)).Decode(&doc); err != nil {
		return nil, translateErr(err)
	}
	return memberFromDoc(&doc), nil
}

func (r *MemberRepository) CountActive(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, memberFilter(entities.MemberFilter{ActiveOnly: true}))
}

func byID(id uuid.UUID) bson.M {
	return bson.M{"_id": id.String()}
}

func memberFilter(filter entities.MemberFilter) bson.M {
	if filter.ActiveOnly {
		return bson.M{"is_active": true}
	}
	return bson.M{}
}
