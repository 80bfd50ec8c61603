package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/study-tracker/internal/api/dto"
	"github.com/spec-kit/study-tracker/internal/api/route"
	"github.com/spec-kit/study-tracker/internal/domain"
	"github.com/spec-kit/study-tracker/internal/service"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
)

// UserService is the account use case set consumed by UsersHandler.
type UserService interface {
	Register(ctx context.Context, in service.RegisterInput) (*domain.User, string, time.Time, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error)
	Get(ctx context.Context, userID string) (*domain.User, error)
}

// UsersHandler exposes account endpoints.
type UsersHandler struct {
	users    UserService
	validate *validate.Validator
	protect  Protection
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users UserService, v *validate.Validator, protect Protection) *UsersHandler {
	return &UsersHandler{users: users, validate: v, protect: protect}
}

// Routes lists the account endpoints.
func (h *UsersHandler) Routes() []route.Route {
	return []route.Route{
		route.New(route.MethodPost, "/user", h.Create),
		route.New(route.MethodPost, "/user/login", h.Login),
		route.New(route.MethodGet, "/user/:id", h.Get, h.protect.Owner()...),
	}
}

// Create handles POST /user.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := bind(c, h.validate, &req, "Invalid username, email or password."); err != nil {
		return err
	}

	user, token, exp, err := h.users.Register(c.UserContext(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(dto.CreateUserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: exp,
	})
}

// Login handles POST /user/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, h.validate, &req, "Email and password are required."); err != nil {
		return err
	}

	user, token, exp, err := h.users.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(dto.LoginResponse{IDUser: user.ID, Token: token, ExpiresAt: exp})
}

// Get handles GET /user/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}
