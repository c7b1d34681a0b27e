package routes

import (
	"net/http"
	"time"

	"clearslot/handlers"
	"clearslot/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the availability computation endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("", hb.ComputeAvailabilityHandler)
		api.POST("/batch", hb.ComputeBatchHandler)
	}
}

// RegisterPersonRoutes registers person profile and credential endpoints.
func RegisterPersonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/persons")
	{
		api.GET("/:id", hb.GetPersonByIDHandler)
		api.PUT("/:id", hb.UpsertPersonHandler)
		api.DELETE("/:id", hb.DeletePersonHandler)
		api.PUT("/:id/preferences", hb.UpdatePreferencesHandler)
		api.PUT("/:id/credentials", hb.StoreCredentialsHandler)
		api.DELETE("/:id/credentials", hb.DeleteCredentialsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterPersonRoutes(r, hb)
	RegisterHealthRoute(r)
}
