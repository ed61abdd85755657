package handlers

import (
	"net/http"

	"turfbook/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service services.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc services.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ListBookings returns every booking, most recent date first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking persists the caller's booking document as-is plus a server
// createdAt stamp, and echoes back the stored record.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input bson.M
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookedSlots returns the groundId -> date -> slots occupancy map.
func (h *BookingHandler) ListBookedSlots(c *gin.Context) {
	slots, err := h.Service.BookedSlots(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to derive booked slots", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booked slots"})
		return
	}
	c.JSON(http.StatusOK, slots)
}
