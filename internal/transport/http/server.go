package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nonnle/chatrelay/internal/auth"
	"github.com/nonnle/chatrelay/internal/config"
	"github.com/nonnle/chatrelay/internal/core"
	"github.com/nonnle/chatrelay/internal/metrics"
	"github.com/nonnle/chatrelay/internal/store"
)

// NewServer builds the HTTP server: REST API, metrics, health, and the
// WebSocket relay endpoint.
func NewServer(hub *core.Hub, authService *auth.Service, st store.Store, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.String(stdhttp.StatusOK, "ok")
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		apiHandlers := NewAPIHandlers(authService, logger)
		api.POST("/register", apiHandlers.Register)
		api.POST("/login", apiHandlers.Login)

		admin := api.Group("/admin", AuthMiddleware(authService, logger), RequireAdmin(logger))
		adminHandlers := NewAdminHandlers(st, logger)
		admin.GET("/users", adminHandlers.ListUsers)
		admin.DELETE("/users/:id", adminHandlers.RemoveUser)
	}

	router.GET("/ws", gin.WrapH(NewWSHandler(hub, cfg.EventRateLimit, logger)))

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
