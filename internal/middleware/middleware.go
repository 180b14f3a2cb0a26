package middleware

import (
	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/jwt"
	"Recipe-API/pkg/user"
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		userRepository user.UserRepository
	}
)

func NewMiddleware(userRepository user.UserRepository) Middleware {
	return &middleware{userRepository: userRepository}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	})
}

// AuthMiddleware resolves the bearer token to an active user and stores its
// id (uint) and role in the request locals.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}

		rawID, role, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		id, err := strconv.ParseUint(rawID, 10, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		u, err := m.userRepository.GetUserByID(c.Context(), uint(id))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUserNotAllowed, domain.ErrUserNotAllowed)
		}
		if err != nil {
			return presenters.HandleError(c, domain.MessageFailedProcessRequest, err)
		}
		if !u.IsActive {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUserNotAllowed, domain.ErrUserInactive)
		}

		c.Locals("user_id", u.ID)
		c.Locals("role", role)
		return c.Next()
	}
}

func extractToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ""
	}
	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(token)
	default:
		return ""
	}
}
