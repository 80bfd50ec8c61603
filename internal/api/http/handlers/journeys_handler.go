package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/study-tracker/internal/api/dto"
	"github.com/spec-kit/study-tracker/internal/api/route"
	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
)

// JourneyService is the journey use case set consumed by JourneysHandler.
type JourneyService interface {
	Create(ctx context.Context, userID, directoryID, name string) (*domain.Journey, error)
	ListByDirectory(ctx context.Context, userID, directoryID string) ([]domain.Journey, error)
	Rename(ctx context.Context, userID, journeyID, name string) (*domain.Journey, error)
	Delete(ctx context.Context, userID, journeyID string) error
}

// JourneysHandler exposes journey endpoints. Every route is scoped to a
// directory or journey id, so ownership is checked by the service.
type JourneysHandler struct {
	journeys JourneyService
	validate *validate.Validator
	protect  Protection
}

// NewJourneysHandler constructs handler.
func NewJourneysHandler(journeys JourneyService, v *validate.Validator, protect Protection) *JourneysHandler {
	return &JourneysHandler{journeys: journeys, validate: v, protect: protect}
}

// Routes lists the journey endpoints.
func (h *JourneysHandler) Routes() []route.Route {
	return []route.Route{
		route.New(route.MethodPost, "/directory/:id/journey", h.Create, h.protect.Caller()...),
		route.New(route.MethodGet, "/directory/:id/journeys", h.List, h.protect.Caller()...),
		route.New(route.MethodPatch, "/journey/:id/rename", h.Rename, h.protect.Caller()...),
		route.New(route.MethodDelete, "/journey/:id", h.Delete, h.protect.Caller()...),
	}
}

// Create handles POST /directory/:id/journey.
func (h *JourneysHandler) Create(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.CreateJourneyRequest
	if err := bind(c, h.validate, &req, "The journey name is invalid or unsafe."); err != nil {
		return err
	}

	journey, err := h.journeys.Create(c.UserContext(), userID, c.Params("id"), req.JourneyName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateJourneyResponse{
		IDJourney:   journey.ID,
		IDDirectory: journey.DirectoryID,
		JourneyName: journey.Name,
	})
}

// List handles GET /directory/:id/journeys.
func (h *JourneysHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	directoryID := c.Params("id")
	journeys, err := h.journeys.ListByDirectory(c.UserContext(), userID, directoryID)
	if err != nil {
		return err
	}
	items := make([]dto.JourneyItem, 0, len(journeys))
	for _, j := range journeys {
		items = append(items, dto.JourneyItem{ID: j.ID, Name: j.Name})
	}
	return c.JSON(dto.JourneysResponse{IDDirectory: directoryID, Journeys: items})
}

// Rename handles PATCH /journey/:id/rename.
func (h *JourneysHandler) Rename(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.RenameJourneyRequest
	if err := bind(c, h.validate, &req, "The new journey name is invalid or unsafe."); err != nil {
		return err
	}

	journey, err := h.journeys.Rename(c.UserContext(), userID, c.Params("id"), req.NewJourneyName)
	if err != nil {
		return err
	}
	return c.JSON(dto.RenameJourneyResponse{IDJourney: journey.ID, NewJourneyName: journey.Name})
}

// Delete handles DELETE /journey/:id.
func (h *JourneysHandler) Delete(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	if err := h.journeys.Delete(c.UserContext(), userID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
