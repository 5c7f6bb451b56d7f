// Package mongodb implements the repositories on a MongoDB document store.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"invitationtracker/internal/adapters/database"
)

// Collection names.
const (
	AreasCollection       = "areas"
	InvitationsCollection = "invitations"
)

// NewHandle returns a lazily dialed handle for database dbName at uri.
func NewHandle(uri, dbName string) *database.Handle[*mongo.Database] {
	return database.NewHandle(
		func(ctx context.Context) (*mongo.Database, error) {
			return Open(ctx, uri, dbName)
		},
		func(ctx context.Context, db *mongo.Database) error {
			return db.Client().Disconnect(ctx)
		},
	)
}

// Open connects to MongoDB, verifies the primary is reachable and returns dbName.
func Open(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client.Database(dbName), nil
}
