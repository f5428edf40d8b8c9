// Package store provides the mongo-backed plan archive used by the viewer:
// built plans are saved as documents keyed by their plan ID and can be
// fetched back or listed later.
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopsim/floornav/pkg/errors"
	"github.com/shopsim/floornav/pkg/plan"
)

const collectionName = "plans"

// Mongo archives plan documents in a MongoDB collection.
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongo connects to MongoDB at uri, verifies the connection, and uses
// the plans collection of the named database.
func NewMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to mongo")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ping mongo")
	}
	return &Mongo{
		client: client,
		coll:   client.Database(database).Collection(collectionName),
	}, nil
}

// Save upserts a plan document by its ID.
func (s *Mongo) Save(ctx context.Context, doc plan.Document) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "save plan %s", doc.ID)
	}
	return nil
}

// Get fetches a plan document by ID.
func (s *Mongo) Get(ctx context.Context, id string) (plan.Document, error) {
	var doc plan.Document
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return plan.Document{}, errors.New(errors.ErrCodeNotFound, "plan %s not found", id)
	}
	if err != nil {
		return plan.Document{}, errors.Wrap(errors.ErrCodeInternal, err, "fetch plan %s", id)
	}
	return doc, nil
}

// List returns the IDs of all archived plans.
func (s *Mongo) List(ctx context.Context) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list plans")
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "decode plan list")
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids, nil
}

// Close disconnects from MongoDB.
func (s *Mongo) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
