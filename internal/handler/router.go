package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"auction-sync/internal/handler/api"
	"auction-sync/internal/handler/middleware"
	"auction-sync/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	View    *api.ViewHandler
	Action  *api.ActionHandler
	Journal *api.JournalHandler
}

func NewHandlers(auth *api.AuthHandler, view *api.ViewHandler, action *api.ActionHandler, journal *api.JournalHandler) Handlers {
	return Handlers{Auth: auth, View: view, Action: action, Journal: journal}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, registry *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, registry, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, registry *prometheus.Registry, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if registry != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/token", Handler: h.Auth.IssueToken},
			{Method: http.MethodGet, Path: "/view", Handler: h.View.Current},
			{Method: http.MethodGet, Path: "/auctions/:id", Handler: h.View.Auction},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/resync", Handler: h.Action.Resync},
			{Method: http.MethodGet, Path: "/journal", Handler: h.Journal.Recent},
		})

		actions := authRequired.Group("/actions")
		addRoutes(actions, []route{
			{Method: http.MethodPost, Path: "/bid", Handler: h.Action.PlaceBid},
			{Method: http.MethodPost, Path: "/end", Handler: h.Action.EndAuction},
			{Method: http.MethodPost, Path: "/withdraw", Handler: h.Action.Withdraw},
			{Method: http.MethodPost, Path: "/auctions", Handler: h.Action.CreateAuction},
			{Method: http.MethodPost, Path: "/admin", Handler: h.Action.ChangeAdmin},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
