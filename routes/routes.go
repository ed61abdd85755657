package routes

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"turfbook/config"
	"turfbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterBookingRoutes registers booking endpoints, including the derived
// booked-slots read model.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/bookings", hb.Booking.ListBookings)
		api.POST("/bookings", hb.Booking.CreateBooking)
		api.GET("/booked-slots", hb.Booking.ListBookedSlots)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/reviews", hb.Review.ListReviews)
		api.POST("/reviews", hb.Review.CreateReview)
	}
}

// RegisterPurchaseRoutes registers purchase endpoints. Purchases are
// write-only; the site never lists them.
func RegisterPurchaseRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/purchases", hb.Purchase.CreatePurchase)
	}
}

// RegisterStatusRoutes registers the API connectivity probe plus health and
// metrics endpoints.
func RegisterStatusRoutes(r *gin.Engine) {
	r.GET("/api/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "turfbook api is running"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterStaticRoutes serves the front-end entry page. Unknown API paths
// stay JSON 404s; every other unmatched path falls through to the page so
// client-side routing keeps working.
func RegisterStaticRoutes(r *gin.Engine) {
	index := filepath.Join(config.AppConfig.StaticDir, "index.html")
	r.StaticFile("/", index)
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.File(index)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterPurchaseRoutes(r, hb)
	RegisterStatusRoutes(r)
	RegisterStaticRoutes(r)
}
