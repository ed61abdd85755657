package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const reviewsCollection = "reviews"

// ReviewRepository persists review documents. Reviews are ordered by the
// caller-supplied timestamp field, not a server-assigned one.
type ReviewRepository interface {
	Insert(ctx context.Context, doc bson.M) (string, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	ListByTimestampDesc(ctx context.Context) ([]bson.M, error)
}

type mongoReviewRepo struct{}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{}
}

func (r *mongoReviewRepo) Insert(ctx context.Context, doc bson.M) (string, error) {
	coll, err := collection(ctx, reviewsCollection)
	if err != nil {
		return "", err
	}
	return insertDoc(ctx, coll, doc)
}

func (r *mongoReviewRepo) GetByID(ctx context.Context, id string) (bson.M, error) {
	coll, err := collection(ctx, reviewsCollection)
	if err != nil {
		return nil, err
	}
	return getDocByID(ctx, coll, id)
}

// ListByTimestampDesc fetches all reviews, newest client timestamp first.
func (r *mongoReviewRepo) ListByTimestampDesc(ctx context.Context) ([]bson.M, error) {
	coll, err := collection(ctx, reviewsCollection)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
