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

// DirectoryService is the directory use case set consumed by DirectoriesHandler.
type DirectoryService interface {
	Create(ctx context.Context, userID, name string) (*domain.Directory, error)
	Rename(ctx context.Context, userID, directoryID, name string) (*domain.Directory, error)
	Deactivate(ctx context.Context, userID, directoryID string) (*domain.Directory, error)
	TouchAccess(ctx context.Context, userID, directoryID string) (*domain.Directory, error)
	ListRecent(ctx context.Context, userID string) ([]domain.Directory, error)
}

// DirectoriesHandler exposes directory endpoints.
type DirectoriesHandler struct {
	directories DirectoryService
	validate    *validate.Validator
	protect     Protection
}

// NewDirectoriesHandler constructs handler.
func NewDirectoriesHandler(directories DirectoryService, v *validate.Validator, protect Protection) *DirectoriesHandler {
	return &DirectoriesHandler{directories: directories, validate: v, protect: protect}
}

// Routes lists the directory endpoints.
func (h *DirectoriesHandler) Routes() []route.Route {
	return []route.Route{
		route.New(route.MethodPost, "/:id/directory", h.Create, h.protect.Owner()...),
		route.New(route.MethodGet, "/:id/directory/recents", h.ListRecent, h.protect.Owner()...),
		route.New(route.MethodPatch, "/directory/:id/rename", h.Rename, h.protect.Caller()...),
		route.New(route.MethodPatch, "/directory/:id/deactivate", h.Deactivate, h.protect.Caller()...),
		route.New(route.MethodPatch, "/directory/:id/updateLastAccess", h.UpdateLastAccess, h.protect.Caller()...),
	}
}

// Create handles POST /:id/directory.
func (h *DirectoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateDirectoryRequest
	if err := bind(c, h.validate, &req, "The directory name is invalid or unsafe."); err != nil {
		return err
	}

	dir, err := h.directories.Create(c.UserContext(), c.Params("id"), req.DirectoryName)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.CreateDirectoryResponse{
		IDDirectory:   dir.ID,
		DirectoryName: dir.Name,
	})
}

// Rename handles PATCH /directory/:id/rename.
func (h *DirectoriesHandler) Rename(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	var req dto.RenameDirectoryRequest
	if err := bind(c, h.validate, &req, "The new directory name is invalid or unsafe."); err != nil {
		return err
	}

	dir, err := h.directories.Rename(c.UserContext(), userID, c.Params("id"), req.NewDirectoryName)
	if err != nil {
		return err
	}
	return c.JSON(dto.RenameDirectoryResponse{IDDirectory: dir.ID, NewDirectoryName: dir.Name})
}

// Deactivate handles PATCH /directory/:id/deactivate.
func (h *DirectoriesHandler) Deactivate(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	dir, err := h.directories.Deactivate(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.DeactivateDirectoryResponse{IDDirectory: dir.ID, Status: dir.Active})
}

// UpdateLastAccess handles PATCH /directory/:id/updateLastAccess.
func (h *DirectoriesHandler) UpdateLastAccess(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	dir, err := h.directories.TouchAccess(c.UserContext(), userID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UpdateLastAccessResponse{IDDirectory: dir.ID})
}

// ListRecent handles GET /:id/directory/recents.
func (h *DirectoriesHandler) ListRecent(c *fiber.Ctx) error {
	dirs, err := h.directories.ListRecent(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	items := make([]dto.RecentDirectory, 0, len(dirs))
	for _, dir := range dirs {
		items = append(items, dto.RecentDirectory{
			ID:             dir.ID,
			Name:           dir.Name,
			LastAccessedAt: dir.LastAccessedAt,
		})
	}
	return c.JSON(dto.RecentDirectoriesResponse{Directories: items})
}
