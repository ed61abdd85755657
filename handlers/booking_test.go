package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"turfbook/models"
	"turfbook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Mock service for testing
type mockBookingService struct {
	listFunc   func(ctx context.Context) ([]bson.M, error)
	createFunc func(ctx context.Context, input bson.M) (bson.M, error)
	slotsFunc  func(ctx context.Context) (models.BookedSlots, error)
}

func (m *mockBookingService) List(ctx context.Context) ([]bson.M, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return []bson.M{}, nil
}

func (m *mockBookingService) Create(ctx context.Context, input bson.M) (bson.M, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return input, nil
}

func (m *mockBookingService) BookedSlots(ctx context.Context) (models.BookedSlots, error) {
	if m.slotsFunc != nil {
		return m.slotsFunc(ctx)
	}
	return models.BookedSlots{}, nil
}

func newBookingRouter(svc *mockBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc, utils.GetLogger())
	r.GET("/api/bookings", h.ListBookings)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/booked-slots", h.ListBookedSlots)
	return r
}

func TestListBookings_OK(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context) ([]bson.M, error) {
			return []bson.M{
				{"groundId": "A", "date": "2024-06-02", "slot": "10-11"},
				{"groundId": "A", "date": "2024-06-01", "slot": "10-11"},
			}, nil
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(got) != 2 || got[0]["date"] != "2024-06-02" {
		t.Errorf("expected date-descending bookings, got %v", got)
	}
}

func TestListBookings_StoreError(t *testing.T) {
	svc := &mockBookingService{
		listFunc: func(ctx context.Context) ([]bson.M, error) {
			return nil, errors.New("store down")
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var got map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got["error"] == "" {
		t.Error("expected an error field in the body")
	}
}

func TestCreateBooking_Created(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, input bson.M) (bson.M, error) {
			input["id"] = "booking-1"
			input["createdAt"] = "2024-06-01T10:00:00Z"
			return input, nil
		},
	}
	r := newBookingRouter(svc)

	body := `{"groundId":"A","date":"2024-06-01","slot":"10-11","teamName":"FC Test"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	var got map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if got["groundId"] != "A" || got["slot"] != "10-11" || got["teamName"] != "FC Test" {
		t.Errorf("submitted fields not echoed: %v", got)
	}
	if got["id"] == "" || got["id"] == nil {
		t.Error("expected a store-assigned id")
	}
	if got["createdAt"] == nil {
		t.Error("expected a server createdAt stamp")
	}
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	r := newBookingRouter(&mockBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCreateBooking_StoreError(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, input bson.M) (bson.M, error) {
			return nil, errors.New("store down")
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"groundId":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestListBookedSlots_NestedShape(t *testing.T) {
	svc := &mockBookingService{
		slotsFunc: func(ctx context.Context) (models.BookedSlots, error) {
			return models.BookedSlots{
				"A": {"2024-06-01": {"10-11", "11-12"}},
			}, nil
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booked-slots", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got map[string]map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	want := map[string]map[string][]string{
		"A": {"2024-06-01": {"10-11", "11-12"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("booked slots = %v, want %v", got, want)
	}
}

func TestListBookedSlots_StoreError(t *testing.T) {
	svc := &mockBookingService{
		slotsFunc: func(ctx context.Context) (models.BookedSlots, error) {
			return nil, errors.New("store down")
		},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booked-slots", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
