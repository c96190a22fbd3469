// Package api exposes the calculators over HTTP. The boundary decodes JSON
// into the decimal-typed configuration, validates it, injects defaults, runs
// the engine and serializes results through the output package. The core
// never sees a request.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/calculation"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/config"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/store"
)

// Server wires the calculation engine and the scenario store into a fiber
// application.
type Server struct {
	app       *fiber.App
	engine    *calculation.CalculationEngine
	parser    *config.InputParser
	scenarios store.ScenarioStore
}

// NewServer builds the HTTP application. The scenario store may be nil, in
// which case the scenario routes respond 503.
func NewServer(engine *calculation.CalculationEngine, scenarios store.ScenarioStore) *Server {
	s := &Server{
		app:       fiber.New(),
		engine:    engine,
		parser:    config.NewInputParser(),
		scenarios: scenarios,
	}

	s.app.Use(logger.New())
	s.app.Use(recover.New())

	api := s.app.Group("/api")
	api.Get("/health", s.handleHealth)
	api.Post("/calculate", s.handleCalculate)
	api.Post("/calculate/projection", s.handleProjection)
	api.Post("/scenarios", s.handleCreateScenario)
	api.Get("/scenarios", s.handleListScenarios)
	api.Get("/scenarios/:id", s.handleGetScenario)
	api.Patch("/scenarios/:id", s.handleRenameScenario)
	api.Delete("/scenarios/:id", s.handleDeleteScenario)

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return s
}

// App exposes the fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen starts serving on the given address.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"message": "API is healthy",
	})
}

func errorEnvelope(c *fiber.Ctx, status int, kind, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   kind,
		"message": message,
	})
}
