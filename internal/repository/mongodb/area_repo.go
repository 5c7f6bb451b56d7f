package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"invitationtracker/internal/adapters/database"
	"invitationtracker/internal/domain"
)

type areaDocument struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func (d areaDocument) toDomain() *domain.Area {
	return &domain.Area{ID: d.ID.Hex(), Name: d.Name}
}

type areaRepository struct {
	DB database.Acquirer[*mongo.Database]
}

// NewAreaRepository returns a domain.AreaRepository backed by the areas collection.
func NewAreaRepository(db database.Acquirer[*mongo.Database]) domain.AreaRepository {
	return &areaRepository{DB: db}
}

func (r *areaRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	return db.Collection(AreasCollection), nil
}

func (r *areaRepository) List(ctx context.Context) ([]*domain.Area, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	var docs []areaDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	areas := make([]*domain.Area, 0, len(docs))
	for _, d := range docs {
		areas = append(areas, d.toDomain())
	}
	return areas, nil
}

func (r *areaRepository) Create(ctx context.Context, a *domain.Area) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	doc := areaDocument{ID: primitive.NewObjectID(), Name: a.Name}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	a.ID = doc.ID.Hex()
	return nil
}

func (r *areaRepository) CreateMany(ctx context.Context, names []string) ([]*domain.Area, error) {
	if len(names) == 0 {
		return []*domain.Area{}, nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]interface{}, 0, len(names))
	areas := make([]*domain.Area, 0, len(names))
	for _, name := range names {
		doc := areaDocument{ID: primitive.NewObjectID(), Name: name}
		docs = append(docs, doc)
		areas = append(areas, doc.toDomain())
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return areas, nil
}
