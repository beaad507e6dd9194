package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartlocker/internal/handler/api"
	"smartlocker/internal/handler/middleware"
	"smartlocker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	lockerHandler *api.LockerHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, lockerHandler, streamHandler, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	lockerHandler *api.LockerHandler,
	streamHandler *api.StreamHandler,
	authMiddleware *middleware.AuthMiddleware,
	registry *prometheus.Registry,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	apiGroup := engine.Group("/api")
	{
		lockers := apiGroup.Group("/lockers")
		{
			// Read surface stays open for display clients.
			addRoutes(lockers, []route{
				{Method: http.MethodGet, Path: "", Handler: lockerHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: lockerHandler.Get},
			})

			authRequired := lockers.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/allocate", Handler: lockerHandler.Allocate},
				{Method: http.MethodPost, Path: "/release", Handler: lockerHandler.ReleaseByOccupant},
				{Method: http.MethodPost, Path: "/:id/unlock", Handler: lockerHandler.Unlock},
				{Method: http.MethodPost, Path: "/:id/lock", Handler: lockerHandler.Lock},
				{Method: http.MethodPost, Path: "/:id/release", Handler: lockerHandler.Release},
				{Method: http.MethodPost, Path: "/:id/occupant", Handler: lockerHandler.AssignOccupant},
			})

			adminRequired := lockers.Group("")
			adminRequired.Use(authMiddleware.RequireAuth())
			adminRequired.Use(authMiddleware.RequireRoleAtLeast(middleware.RoleAdmin))
			addRoutes(adminRequired, []route{
				{Method: http.MethodPost, Path: "/:id/maintenance", Handler: lockerHandler.SetMaintenance},
				{Method: http.MethodDelete, Path: "/:id/maintenance", Handler: lockerHandler.ClearMaintenance},
			})
		}

		streamGroup := apiGroup.Group("/stream")
		{
			addRoutes(streamGroup, []route{
				{Method: http.MethodGet, Path: "", Handler: streamHandler.SSE},
				{Method: http.MethodGet, Path: "/ws", Handler: streamHandler.WebSocket},
			})
		}
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
