package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/study-tracker/internal/api/dto"
	"github.com/spec-kit/study-tracker/internal/api/route"
	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/service"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
)

// SettingsService is the settings use case set consumed by SettingsHandler.
type SettingsService interface {
	Create(ctx context.Context, userID string) (*domain.Settings, error)
	Get(ctx context.Context, userID string) (*domain.Settings, error)
	Update(ctx context.Context, userID string, in service.SettingsUpdate) (*domain.Settings, error)
}

// SettingsHandler exposes per-user settings endpoints.
type SettingsHandler struct {
	settings SettingsService
	validate *validate.Validator
	protect  Protection
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings SettingsService, v *validate.Validator, protect Protection) *SettingsHandler {
	return &SettingsHandler{settings: settings, validate: v, protect: protect}
}

func (h *SettingsHandler) Routes() []route.Route {
	return []route.Route{
		route.New(route.MethodPost, "/:id/settings", h.Create, h.protect.Owner()...),
		route.New(route.MethodGet, "/:id/settings", h.Get, h.protect.Owner()...),
		route.New(route.MethodPut, "/:id/settings", h.Update, h.protect.Owner()...),
	}
}

// Create handles POST /:id/settings.
func (h *SettingsHandler) Create(c *fiber.Ctx) error {
	settings, err := h.settings.Create(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(settingsResponse(settings))
}

// Get handles GET /:id/settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settings.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(settingsResponse(settings))
}

// Update handles PUT /:id/settings.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := bind(c, h.validate, &req, "Theme must be light, dark or system and notifications is required."); err != nil {
		return err
	}

	settings, err := h.settings.Update(c.UserContext(), c.Params("id"), service.SettingsUpdate{
		Theme:         domain.Theme(req.Theme),
		Notifications: *req.Notifications,
	})
	if err != nil {
		return err
	}
	return c.JSON(settingsResponse(settings))
}

func settingsResponse(settings *domain.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		IDUser: settings.UserID,
		Settings: dto.SettingsBody{
			Theme:         string(settings.Theme),
			Notifications: settings.Notifications,
		},
	}
}
