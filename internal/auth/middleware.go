package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/spec-kit/study-tracker/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Principal represents the authenticated caller for the lifetime of one request.
type Principal struct {
	UserID string
}

// AuthMiddleware validates bearer tokens.
type AuthMiddleware struct {
	tokens TokenVerifier
	logger *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens TokenVerifier, logger *zap.Logger) *AuthMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Handle enforces authentication for protected routes. Every failure produces
// the same 401 body; the cause is only logged.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return m.reject(c, "missing authorization header", nil)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return m.reject(c, "invalid authorization header", nil)
	}

	userID, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return m.reject(c, "token rejected", err)
	}

	c.Locals(principalKey, &Principal{UserID: userID})
	return c.Next()
}

func (m *AuthMiddleware) reject(c *fiber.Ctx, reason string, err error) error {
	m.logger.Debug("authentication failed",
		zap.String("reason", reason),
		zap.String("path", utils.CopyString(c.Path())),
		zap.Error(err),
	)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": errorutil.UnauthorizedMessage})
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(c *fiber.Ctx) (string, bool) {
	principal, ok := PrincipalFromContext(c)
	if !ok || principal.UserID == "" {
		return "", false
	}
	return principal.UserID, true
}
