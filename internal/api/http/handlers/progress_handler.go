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

// ProgressService is the progress use case set consumed by ProgressHandler.
type ProgressService interface {
	Create(ctx context.Context, userID, title string, totalItems int) (*domain.Progress, error)
	Increase(ctx context.Context, userID, progressID string) (*domain.Progress, error)
	Statistics(ctx context.Context, userID string) (domain.ProgressStatistics, error)
}

// ProgressHandler exposes progress tracking endpoints.
type ProgressHandler struct {
	progress ProgressService
	validate *validate.Validator
	protect  Protection
}

// NewProgressHandler constructs handler.
func NewProgressHandler(progress ProgressService, v *validate.Validator, protect Protection) *ProgressHandler {
	return &ProgressHandler{progress: progress, validate: v, protect: protect}
}

func (h *ProgressHandler) Routes() []route.Route {
	return []route.Route{
		route.New(route.MethodPost, "/:id/progress", h.Create, h.protect.Owner()...),
		route.New(route.MethodGet, "/:id/progress/statistics", h.Statistics, h.protect.Owner()...),
		route.New(route.MethodPatch, "/progress/:id/increase", h.Increase, h.protect.Caller()...),
	}
}

// Create handles POST /:id/progress.
func (h *ProgressHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateProgressRequest
	if err := bind(c, h.validate, &req, "Title must be safe and totalItems at least 1."); err != nil {
		return err
	}
	progress, err := h.progress.Create(c.UserContext(), c.Params("id"), req.Title, req.TotalItems)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(progressResponse(progress))
}

// Increase handles PATCH /progress/:id/increase.
func (h *ProgressHandler) Increase(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	progress, err := h.progress.Increase(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(progressResponse(progress))
}

// Statistics handles GET /:id/progress/statistics.
func (h *ProgressHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.progress.Statistics(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.ProgressStatisticsResponse{
		IDUser:         stats.UserID,
		Tracks:         stats.Tracks,
		TotalItems:     stats.TotalItems,
		CompletedItems: stats.CompletedItems,
		CompletionRate: stats.CompletionRate(),
	})
}

func progressResponse(p *domain.Progress) dto.ProgressResponse {
	return dto.ProgressResponse{
		IDProgress:     p.ID,
		Title:          p.Title,
		TotalItems:     p.TotalItems,
		CompletedItems: p.CompletedItems,
	}
}
