package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CristiGvl/picoCPUStat/internal/config"
	"github.com/CristiGvl/picoCPUStat/internal/cpu"
	"github.com/CristiGvl/picoCPUStat/internal/disk"
	"github.com/CristiGvl/picoCPUStat/internal/memory"
	"github.com/CristiGvl/picoCPUStat/internal/platform"
	"github.com/CristiGvl/picoCPUStat/internal/temps"
)

// Server represents the API server
type Server struct {
	app          *fiber.App
	cpuReader    cpu.Reader
	memoryReader memory.Reader
	diskReader   disk.Reader
	tempsReader  temps.Reader
	timeout      time.Duration
}

// NewServer creates a new API server reading from the configured roots
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roots := cfg.Roots()
	return newServer(
		cfg.Server.RequestTimeout,
		cpu.NewReaderWithRoots(roots),
		memory.NewReaderWithRoots(roots),
		disk.NewReaderWithRoots(roots),
		temps.NewReaderWithRoots(roots),
	), nil
}

func newServer(timeout time.Duration, cpuReader cpu.Reader, memoryReader memory.Reader, diskReader disk.Reader, tempsReader temps.Reader) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		ServerHeader:          "picoCPUStat",
		AppName:               "picoCPUStat v1.0",
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "*",
		ExposeHeaders: "Content-Length,Content-Type",
		MaxAge:        86400, // 24 hours
	}))

	server := &Server{
		app:          app,
		cpuReader:    cpuReader,
		memoryReader: memoryReader,
		diskReader:   diskReader,
		tempsReader:  tempsReader,
		timeout:      timeout,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// CPU endpoints
	api.Get("/cpu/times", s.getCPUTimes)
	api.Get("/cpu/info", s.getCPUInfo)
	api.Get("/cpu/counts", s.getCPUCounts)
	api.Get("/cpu/temps", s.getCPUTemps)

	// Memory endpoints
	api.Get("/memory", s.getMemory)
	api.Get("/memory/swap", s.getSwap)
	api.Get("/memory/swap/devices", s.getSwapDevices)

	// Disk endpoints
	api.Get("/disk", s.getDisk)
	api.Get("/disk/usage", s.getDiskUsage)

	api.Get("/snapshot", s.getSnapshot)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"supported": platform.IsSupported(),
		"timestamp": time.Now().Unix(),
	})
}
