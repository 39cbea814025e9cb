package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ShafahmadxX69/BEISS/internal/api"
	"github.com/ShafahmadxX69/BEISS/internal/config"
	"github.com/ShafahmadxX69/BEISS/internal/feed"
	"github.com/ShafahmadxX69/BEISS/internal/gviz"
	"github.com/ShafahmadxX69/BEISS/internal/insights"
)

// Server is the HTTP API server consumed by the dashboard UI.
type Server struct {
	router *gin.Engine
	api    *api.Handler
}

// NewServer wires the feed pipelines into the HTTP API.
func NewServer(cfg *config.AppConfig, log zerolog.Logger) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	client := gviz.NewClient(cfg.Feed.SpreadsheetID, cfg.Feed.Timeout())
	svc := feed.NewService(client, cfg.Feed, log)
	gen := insights.NewGenerator(cfg.Insights.Model)

	s := &Server{
		router: gin.Default(),
		api:    api.NewHandler(svc, gen, cfg, log),
	}

	s.setupRoutes()
	return s
}

// setupRoutes sets up CORS and the API group. The dashboard UI is served
// elsewhere; this process only exposes the data API.
func (s *Server) setupRoutes() {
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
