package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Arnarsson/solar-calculator-app-sub000/internal/domain"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/output"
	"github.com/Arnarsson/solar-calculator-app-sub000/internal/store"
)

func (s *Server) handleCalculate(c *fiber.Ctx) error {
	var cfg domain.Configuration
	if err := c.BodyParser(&cfg); err != nil {
		calculationErrors.WithLabelValues("calculate", "decode").Inc()
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", err.Error())
	}
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		calculationErrors.WithLabelValues("calculate", "validation").Inc()
		return errorEnvelope(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	result, err := s.engine.RunCalculation(&cfg)
	if err != nil {
		calculationErrors.WithLabelValues("calculate", "calculation").Inc()
		return errorEnvelope(c, fiber.StatusInternalServerError, "calculation_failed", err.Error())
	}

	calculationsTotal.WithLabelValues("calculate").Inc()
	return c.Status(fiber.StatusOK).JSON(output.NewCalculationDTO(result))
}

func (s *Server) handleProjection(c *fiber.Ctx) error {
	var cfg domain.Configuration
	if err := c.BodyParser(&cfg); err != nil {
		calculationErrors.WithLabelValues("projection", "decode").Inc()
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", err.Error())
	}
	if err := s.parser.ValidateConfiguration(&cfg); err != nil {
		calculationErrors.WithLabelValues("projection", "validation").Inc()
		return errorEnvelope(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	projection, err := s.engine.RunProjection(&cfg)
	if err != nil {
		calculationErrors.WithLabelValues("projection", "calculation").Inc()
		return errorEnvelope(c, fiber.StatusInternalServerError, "calculation_failed", err.Error())
	}

	calculationsTotal.WithLabelValues("projection").Inc()
	return c.Status(fiber.StatusOK).JSON(output.NewProjectionDTO(projection))
}

type createScenarioRequest struct {
	UserID            string               `json:"userId"`
	Name              string               `json:"name"`
	Inputs            domain.Configuration `json:"inputs"`
	IncludeProjection bool                 `json:"includeProjection"`
}

func (s *Server) handleCreateScenario(c *fiber.Ctx) error {
	if s.scenarios == nil {
		return errorEnvelope(c, fiber.StatusServiceUnavailable, "store_unavailable", "scenario persistence is not configured")
	}

	var req createScenarioRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", err.Error())
	}
	if req.UserID == "" || req.Name == "" {
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", "userId and name are required")
	}
	if err := s.parser.ValidateConfiguration(&req.Inputs); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "validation_failed", err.Error())
	}

	// Snapshot the inputs in their wire form so the decimal values survive
	// storage byte-for-byte.
	inputs, err := json.Marshal(req.Inputs)
	if err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "snapshot_failed", err.Error())
	}

	scenario := &store.Scenario{
		UserID: req.UserID,
		Name:   req.Name,
		Inputs: inputs,
	}

	if req.IncludeProjection {
		projection, err := s.engine.RunProjection(&req.Inputs)
		if err != nil {
			return errorEnvelope(c, fiber.StatusInternalServerError, "calculation_failed", err.Error())
		}
		snapshot, err := json.Marshal(output.NewProjectionDTO(projection))
		if err != nil {
			return errorEnvelope(c, fiber.StatusInternalServerError, "snapshot_failed", err.Error())
		}
		scenario.Projection = snapshot
	}

	if err := s.scenarios.Create(c.Context(), scenario); err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "store_failed", err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(scenario)
}

func (s *Server) handleListScenarios(c *fiber.Ctx) error {
	if s.scenarios == nil {
		return errorEnvelope(c, fiber.StatusServiceUnavailable, "store_unavailable", "scenario persistence is not configured")
	}

	userID := c.Query("user")
	if userID == "" {
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", "user query parameter is required")
	}

	scenarios, err := s.scenarios.ListByUser(c.Context(), userID)
	if err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "store_failed", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(scenarios)
}

func (s *Server) handleGetScenario(c *fiber.Ctx) error {
	if s.scenarios == nil {
		return errorEnvelope(c, fiber.StatusServiceUnavailable, "store_unavailable", "scenario persistence is not configured")
	}

	scenario, err := s.scenarios.Get(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return errorEnvelope(c, fiber.StatusNotFound, "not_found", "scenario not found")
	}
	if err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "store_failed", err.Error())
	}
	return c.Status(fiber.StatusOK).JSON(scenario)
}

type renameScenarioRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRenameScenario(c *fiber.Ctx) error {
	if s.scenarios == nil {
		return errorEnvelope(c, fiber.StatusServiceUnavailable, "store_unavailable", "scenario persistence is not configured")
	}

	var req renameScenarioRequest
	if err := c.BodyParser(&req); err != nil {
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", err.Error())
	}
	if req.Name == "" {
		return errorEnvelope(c, fiber.StatusBadRequest, "invalid_request", "name is required")
	}

	err := s.scenarios.Rename(c.Context(), c.Params("id"), req.Name)
	if errors.Is(err, store.ErrNotFound) {
		return errorEnvelope(c, fiber.StatusNotFound, "not_found", "scenario not found")
	}
	if err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "store_failed", err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleDeleteScenario(c *fiber.Ctx) error {
	if s.scenarios == nil {
		return errorEnvelope(c, fiber.StatusServiceUnavailable, "store_unavailable", "scenario persistence is not configured")
	}

	err := s.scenarios.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return errorEnvelope(c, fiber.StatusNotFound, "not_found", "scenario not found")
	}
	if err != nil {
		return errorEnvelope(c, fiber.StatusInternalServerError, "store_failed", err.Error())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
