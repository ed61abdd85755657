package services

import (
	"context"

	"turfbook/database/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// ReviewService exposes review operations to the HTTP layer.
type ReviewService interface {
	List(ctx context.Context) ([]bson.M, error)
	Create(ctx context.Context, input bson.M) (bson.M, error)
}

type DefaultReviewService struct {
	Repo repository.ReviewRepository
}

// List returns every review ordered by the caller-supplied timestamp field,
// newest first. That field is client input and nothing more; a client writing
// a bogus timestamp repositions its review.
func (s *DefaultReviewService) List(ctx context.Context) ([]bson.M, error) {
	return s.Repo.ListByTimestampDesc(ctx)
}

// Create inserts the review exactly as submitted (no server timestamp), then
// re-reads it by its new id.
func (s *DefaultReviewService) Create(ctx context.Context, input bson.M) (bson.M, error) {
	if input == nil {
		input = bson.M{}
	}
	id, err := s.Repo.Insert(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}
