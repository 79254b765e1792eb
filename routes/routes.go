package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smokey-backend/handlers"
	"smokey-backend/middleware"
	"smokey-backend/sync"
)

func SetupRoutes(r *gin.Engine, repo handlers.CatalogReader, engine *sync.Engine) {
	syncHandler := &handlers.SyncHandler{Engine: engine}
	menuHandler := &handlers.MenuHandler{Repo: repo}

	// Cloud Run health check
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running", "service": "smokey-backend"})
	})

	limiter := middleware.NewRateLimiter(60, time.Minute)

	api := r.Group("/api")
	api.Use(limiter.Middleware())

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/menu", menuHandler.GetMenu)
		protected.GET("/locations/:id/sync", menuHandler.GetSyncStatus)
	}

	// Admin routes (sync mutates the catalog)
	admin := protected.Group("")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.POST("/sync/menu", syncHandler.SyncMenu)
		admin.POST("/sync/jobs", syncHandler.StartSyncJob)
		admin.GET("/sync/jobs/:id", syncHandler.GetSyncJob)
	}
}
