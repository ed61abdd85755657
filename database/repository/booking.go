package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingsCollection = "bookings"

// BookingRepository persists booking documents. Bookings are open documents:
// callers send whatever fields they like and the service stores them as-is.
type BookingRepository interface {
	Insert(ctx context.Context, doc bson.M) (string, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
	ListByDateDesc(ctx context.Context) ([]bson.M, error)
	ListSlotFields(ctx context.Context) ([]bson.M, error)
}

type mongoBookingRepo struct{}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{}
}

// Insert stores a booking document and returns its id.
func (r *mongoBookingRepo) Insert(ctx context.Context, doc bson.M) (string, error) {
	coll, err := collection(ctx, bookingsCollection)
	if err != nil {
		return "", err
	}
	return insertDoc(ctx, coll, doc)
}

// GetByID returns a booking by its id.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (bson.M, error) {
	coll, err := collection(ctx, bookingsCollection)
	if err != nil {
		return nil, err
	}
	return getDocByID(ctx, coll, id)
}

// ListByDateDesc fetches all bookings, most recent date first.
func (r *mongoBookingRepo) ListByDateDesc(ctx context.Context) ([]bson.M, error) {
	coll, err := collection(ctx, bookingsCollection)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
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

// ListSlotFields fetches only the fields the booked-slots projection needs,
// in store order.
func (r *mongoBookingRepo) ListSlotFields(ctx context.Context) ([]bson.M, error) {
	coll, err := collection(ctx, bookingsCollection)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetProjection(bson.M{
		"groundId": 1,
		"date":     1,
		"slot":     1,
		"_id":      0,
	})
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
