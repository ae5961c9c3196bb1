package routes

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/phamqv/image-bundler/internal/http/handlers"
	"github.com/phamqv/image-bundler/internal/http/middleware"
)

type Router struct {
	imageHandler *handlers.ImageHandler
	logger       *zap.Logger
	staticDir    string
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	logger *zap.Logger,
	staticDir string,
) *Router {
	return &Router{
		imageHandler: imageHandler,
		logger:       logger,
		staticDir:    staticDir,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.imageHandler.HealthCheck)

		images := v1.Group("/images")
		images.Use(middleware.RequireMultipart())
		{
			images.POST("/process", r.imageHandler.ProcessImage)
			images.POST("/bundle", r.imageHandler.BundleImages)
			images.POST("/jobs", r.imageHandler.CreateJob)
			images.GET("/jobs/:id", r.imageHandler.GetJob)
		}
	}

	// Upload form. Registered after the API so /api/* is never shadowed.
	router.StaticFile("/", filepath.Join(r.staticDir, "index.html"))
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Not found",
		})
	})

	return router
}
