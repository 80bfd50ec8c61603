package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

// RequireOwner ensures the path parameter named param matches the
// authenticated user. It must run after AuthMiddleware.Handle.
func RequireOwner(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserIDFromContext(c)
		if !ok || c.Params(param) != userID {
			return errorutil.NewUnauthorized(errorutil.UnauthorizedMessage)
		}
		return c.Next()
	}
}
