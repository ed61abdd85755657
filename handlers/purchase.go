package handlers

import (
	"net/http"

	"turfbook/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	Service services.PurchaseService
	Logger  *zap.Logger
}

func NewPurchaseHandler(svc services.PurchaseService, logger *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{Service: svc, Logger: logger}
}

// CreatePurchase stores an accessory or refreshment purchase; the two kinds
// differ only in the fields the client sends.
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var input bson.M
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	purchase, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		h.Logger.Error("failed to create purchase", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create purchase"})
		return
	}
	c.JSON(http.StatusCreated, purchase)
}
