package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

const purchasesCollection = "purchases"

// PurchaseRepository persists purchase documents. Accessory and refreshment
// purchases share the collection and are distinguished by content only.
// There is no list operation; the site never reads purchases back.
type PurchaseRepository interface {
	Insert(ctx context.Context, doc bson.M) (string, error)
	GetByID(ctx context.Context, id string) (bson.M, error)
}

type mongoPurchaseRepo struct{}

// NewMongoPurchaseRepo returns a PurchaseRepository backed by MongoDB.
func NewMongoPurchaseRepo() PurchaseRepository {
	return &mongoPurchaseRepo{}
}

func (r *mongoPurchaseRepo) Insert(ctx context.Context, doc bson.M) (string, error) {
	coll, err := collection(ctx, purchasesCollection)
	if err != nil {
		return "", err
	}
	return insertDoc(ctx, coll, doc)
}

func (r *mongoPurchaseRepo) GetByID(ctx context.Context, id string) (bson.M, error) {
	coll, err := collection(ctx, purchasesCollection)
	if err != nil {
		return nil, err
	}
	return getDocByID(ctx, coll, id)
}
