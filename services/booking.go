package services

import (
	"context"
	"time"

	"turfbook/database/repository"
	"turfbook/models"
	"turfbook/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// BookingService exposes booking operations to the HTTP layer.
type BookingService interface {
	List(ctx context.Context) ([]bson.M, error)
	Create(ctx context.Context, input bson.M) (bson.M, error)
	BookedSlots(ctx context.Context) (models.BookedSlots, error)
}

type DefaultBookingService struct {
	Repo repository.BookingRepository
}

// List returns every booking, most recent date first.
func (s *DefaultBookingService) List(ctx context.Context) ([]bson.M, error) {
	return s.Repo.ListByDateDesc(ctx)
}

// Create stamps createdAt, persists the document, then re-reads it by its
// new id so the response reflects the store's canonical stored form. Nothing
// about the document's shape is validated; double-booking a ground/date/slot
// is possible and callers are expected to pre-check via BookedSlots.
func (s *DefaultBookingService) Create(ctx context.Context, input bson.M) (bson.M, error) {
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

// BookedSlots rebuilds the groundId -> day -> slots occupancy map from the
// bookings collection. Slot order within a day follows store order. Records
// missing a usable groundId, slot, or date are skipped rather than failing
// the whole request.
func (s *DefaultBookingService) BookedSlots(ctx context.Context) (models.BookedSlots, error) {
	docs, err := s.Repo.ListSlotFields(ctx)
	if err != nil {
		return nil, err
	}

	slots := models.BookedSlots{}
	for _, doc := range docs {
		groundID, ok := doc["groundId"].(string)
		if !ok || groundID == "" {
			continue
		}
		slot, ok := doc["slot"].(string)
		if !ok || slot == "" {
			continue
		}
		day, ok := utils.DayString(doc["date"])
		if !ok {
			utils.GetLogger().Warn("skipping booking with unusable date",
				zap.String("groundId", groundID), zap.String("slot", slot))
			continue
		}
		slots.Add(groundID, day, slot)
	}
	return slots, nil
}
