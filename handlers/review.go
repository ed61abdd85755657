package handlers

import (
	"net/http"

	"turfbook/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	Service services.ReviewService
	Logger  *zap.Logger
}

func NewReviewHandler(svc services.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: svc, Logger: logger}
}

// ListReviews returns every review, newest client timestamp first.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview stores the caller's review document as submitted.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var input bson.M
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	review, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("failed to create review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}
