package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/study-tracker/internal/api/route"
	"github.com/spec-kit/study-tracker/internal/auth"
	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
	"github.com/spec-kit/study-tracker/pkg/util/validate"
)

// RouteSource is implemented by every handler that contributes endpoints.
type RouteSource interface {
	Routes() []route.Route
}

// Protection is the middleware chain shared by authenticated routes.
type Protection struct {
	Authenticate fiber.Handler
}

// Owner returns the chain for routes whose :id parameter is the caller's user id.
func (p Protection) Owner() []fiber.Handler {
	return []fiber.Handler{p.Authenticate, auth.RequireOwner("id")}
}

// Caller returns the chain for routes scoped to another resource id.
func (p Protection) Caller() []fiber.Handler {
	return []fiber.Handler{p.Authenticate}
}

// bind parses the JSON body into req and runs struct validation. invalidMsg
// is the client-facing message used when validation fails.
func bind(c *fiber.Ctx, v *validate.Validator, req any, invalidMsg string) error {
	if err := c.BodyParser(req); err != nil {
		return errorutil.NewValidationError("Invalid payload.", nil)
	}
	if details, ok := v.Struct(req); !ok {
		return errorutil.NewValidationError(invalidMsg, details)
	}
	return nil
}

func callerID(c *fiber.Ctx) (string, error) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return "", errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
	}
	return userID, nil
}
