// Package server wires the HTTP boundary: Fiber app, middleware and routes.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/dongchun97/trans-test/internal/common"
	"github.com/dongchun97/trans-test/internal/config"
	"github.com/dongchun97/trans-test/internal/handler"
	"github.com/dongchun97/trans-test/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	app    *fiber.App
	cfg    *config.Config
	logger *common.Logger
}

// New builds the Fiber app over an already loaded lookup service.
func New(cfg *config.Config, lookup service.WordLookup, logger *common.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "word-analyzer",
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
		UnescapePath:          true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${status} - ${method} ${path} (${latency}) id=${locals:requestid}\n",
		Output: logger.Logger,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,HEAD,OPTIONS",
	}))

	setupRoutes(app, handler.NewWordHandler(lookup), handler.NewHealthHandler(lookup))

	if cfg.Server.StaticDir != "" {
		app.Static("/", cfg.Server.StaticDir, fiber.Static{Index: "index.html"})
	}

	return &Server{app: app, cfg: cfg, logger: logger}
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving on the configured address until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
	return s.app.Listen(s.cfg.Addr())
}

func (s *Server) Shutdown() error {
	return s.app.ShutdownWithTimeout(shutdownTimeout)
}
