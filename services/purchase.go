package services

import (
	"context"
	"time"

	"turfbook/database/repository"

	"go.mongodb.org/mongo-driver/bson"
)

// PurchaseService exposes purchase operations to the HTTP layer.
type PurchaseService interface {
	Create(ctx context.Context, input bson.M) (bson.M, error)
}

type DefaultPurchaseService struct {
	Repo repository.PurchaseRepository
}

// Create stamps createdAt, inserts, and re-reads the stored purchase by its
// new id.
func (s *DefaultPurchaseService) Create(ctx context.Context, input bson.M) (bson.M, error) {
	if input == nil {
		input = bson.M{}
	}
	input["createdAt"] = time.Now().UTC()

	id, err := s.Repo.Insert(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}
