package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-emotive/db"
	"go-emotive/handlers"
	"go-emotive/logger"
)

// Deps are the services behind the HTTP API. History and Feed may be nil.
type Deps struct {
	Analyzer handlers.Analyzer
	Names    handlers.NameResolver
	Feedback handlers.FeedbackSubmitter
	History  db.Store
	Feed     handlers.FeedFetcher
	Log      logrus.FieldLogger
}

func SetupRouter(deps Deps) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}

	r := gin.New()
	r.Use(logger.Middleware(deps.Log), gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Go Emotive!",
		})
	})

	api := r.Group("/api/emotive")
	{
		api.GET("/health", handlers.HealthHandler)
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeHandler(c, deps.Analyzer)
		})
		api.POST("/export", handlers.ExportHandler)
		api.POST("/feedback", func(c *gin.Context) {
			handlers.FeedbackHandler(c, deps.Feedback)
		})
		api.GET("/language/:code", func(c *gin.Context) {
			handlers.LanguageHandler(c, deps.Names)
		})
		api.GET("/history", func(c *gin.Context) {
			handlers.HistoryHandler(c, deps.History)
		})
		if deps.Feed != nil {
			api.GET("/bluesky", func(c *gin.Context) {
				handlers.BlueskyHandler(c, deps.Feed, deps.Analyzer)
			})
		}
	}

	return r
}
