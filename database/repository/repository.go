package repository

import (
	"context"

	"turfbook/database"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// collection resolves a collection handle through the lazily-connected
// shared database.
func collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := database.GetDatabase(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// insertDoc assigns an id when the document has none, inserts, and returns
// the id so callers can re-read the stored form.
func insertDoc(ctx context.Context, coll *mongo.Collection, doc bson.M) (string, error) {
	id, ok := doc["id"].(string)
	if !ok || id == "" {
		id = uuid.New().String()
		doc["id"] = id
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return id, nil
}

// getDocByID returns the stored document with the given id field.
func getDocByID(ctx context.Context, coll *mongo.Collection, id string) (bson.M, error) {
	var doc bson.M
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
