package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"invitationtracker/internal/adapters/database"
	"invitationtracker/internal/domain"
)

type invitationDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address,omitempty"`
	Area      string             `bson:"area"`
	Phone     string             `bson:"phone,omitempty"`
	People    int                `bson:"people"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newInvitationDocument(inv *domain.Invitation) invitationDocument {
	return invitationDocument{
		Name:      inv.Name,
		Address:   inv.Address,
		Area:      inv.Area,
		Phone:     inv.Phone,
		People:    inv.People,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func (d invitationDocument) toDomain() *domain.Invitation {
	return &domain.Invitation{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Address:   d.Address,
		Area:      d.Area,
		Phone:     d.Phone,
		People:    d.People,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// buildFilter matches name as a quoted, case-insensitive regex and area exactly.
func buildFilter(filter domain.InvitationFilter) bson.D {
	f := bson.D{}
	if filter.Name != "" {
		f = append(f, bson.E{Key: "name", Value: primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}})
	}
	if filter.Area != "" {
		f = append(f, bson.E{Key: "area", Value: filter.Area})
	}
	return f
}

func buildSort(dir domain.SortDirection) bson.D {
	people := -1
	if dir == domain.SortAsc {
		people = 1
	}
	return bson.D{{Key: "people", Value: people}, {Key: "createdAt", Value: -1}}
}

// buildUpdate returns a $set document with the patched fields and updatedAt.
func buildUpdate(patch domain.InvitationPatch, updatedAt time.Time) bson.D {
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Address != nil {
		set = append(set, bson.E{Key: "address", Value: *patch.Address})
	}
	if patch.Area != nil {
		set = append(set, bson.E{Key: "area", Value: *patch.Area})
	}
	if patch.Phone != nil {
		set = append(set, bson.E{Key: "phone", Value: *patch.Phone})
	}
	if patch.People != nil {
		set = append(set, bson.E{Key: "people", Value: *patch.People})
	}
	set = append(set, bson.E{Key: "updatedAt", Value: updatedAt})
	return bson.D{{Key: "$set", Value: set}}
}

type invitationRepository struct {
	DB database.Acquirer[*mongo.Database]
}

// NewInvitationRepository returns a domain.InvitationRepository backed by the invitations collection.
func NewInvitationRepository(db database.Acquirer[*mongo.Database]) domain.InvitationRepository {
	return &invitationRepository{DB: db}
}

func (r *invitationRepository) collection(ctx context.Context) (*mongo.Collection, error) {
	db, err := r.DB.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire database: %w", err)
	}
	return db.Collection(InvitationsCollection), nil
}

func (r *invitationRepository) List(ctx context.Context, filter domain.InvitationFilter) ([]*domain.Invitation, error) {
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, buildFilter(filter), options.Find().SetSort(buildSort(filter.Sort)))
	if err != nil {
		return nil, err
	}
	var docs []invitationDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	invitations := make([]*domain.Invitation, 0, len(docs))
	for _, d := range docs {
		invitations = append(invitations, d.toDomain())
	}
	return invitations, nil
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	doc := newInvitationDocument(inv)
	doc.ID = primitive.NewObjectID()
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	inv.ID = doc.ID.Hex()
	return nil
}

func (r *invitationRepository) Update(ctx context.Context, id string, patch domain.InvitationPatch, updatedAt time.Time) (*domain.Invitation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	var doc invitationDocument
	err = coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		buildUpdate(patch, updatedAt),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	coll, err := r.collection(ctx)
	if err != nil {
		return err
	}
	_, err = coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	return err
}
