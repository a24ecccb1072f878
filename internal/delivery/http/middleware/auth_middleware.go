package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Hassan141998/Job-Portal/internal/pkg/jwt"
)

const (
	CtxAccountIDKey = "account_id"
	CtxEmailKey     = "email"
	CtxUserTypeKey  = "user_type"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware rejects requests without a valid access token.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		setAuthLocals(c, claims)
		return c.Next()
	}
}

// OptionalMiddleware records the caller's identity when a valid access
// token is present and lets the request through either way. Endpoints
// like job posting attach the identity if there is one but never require
// it.
func (m *AuthMiddleware) OptionalMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return c.Next()
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			return c.Next()
		}

		setAuthLocals(c, claims)
		return c.Next()
	}
}

// AccountIDFromLocals returns the authenticated account id, if any.
func AccountIDFromLocals(c fiber.Ctx) *uuid.UUID {
	id, ok := c.Locals(CtxAccountIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return nil
	}
	return &id
}

func setAuthLocals(c fiber.Ctx, claims jwt.Claims) {
	c.Locals(CtxAccountIDKey, claims.AccountID)
	c.Locals(CtxEmailKey, claims.Email)
	c.Locals(CtxUserTypeKey, claims.UserType)
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
