package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"feed_demo/internal/config"
	"feed_demo/internal/http/controller"
	"feed_demo/internal/http/middleware"
	"feed_demo/internal/metrics"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
		middleware.Metrics(m),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	router.GET("/users", handler.ListUsers)
	router.GET("/users/:id", handler.GetUser)
	router.GET("/users/:id/posts", handler.ListUserPosts)

	router.GET("/posts", handler.ListPosts)
	router.GET("/posts/:id", handler.GetPost)
	router.GET("/notifications", handler.ListNotifications)
	router.GET("/sse/:topic", handler.Stream)

	writes := router.Group("/", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	writes.POST("/posts", handler.CreatePost)
	writes.PUT("/posts/:id", handler.EditPost)
	writes.POST("/posts/:id/reactions", handler.AddReaction)
	writes.POST("/notifications/refresh", handler.RefreshNotifications)
	writes.POST("/commands/publish", handler.PublishCommand)

	return router
}
