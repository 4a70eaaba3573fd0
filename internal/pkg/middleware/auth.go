package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
	"github.com/SandeshLive/Sandesh/internal/pkg/security"
)

// LocalAdminKey is the fiber locals key the authenticated admin is stored
// under.
const LocalAdminKey = "ADMIN_ACCOUNT"

// RequireAdminToken authenticates requests carrying a bearer token. Missing,
// invalid or expired tokens and inactive accounts all answer 401 JSON.
func RequireAdminToken(adminRepo repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		admin, status, msg := adminFromRequest(c, adminRepo)
		if admin == nil {
			return c.Status(status).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		}
		c.Locals(LocalAdminKey, admin)
		return c.Next()
	}
}

// OptionalAdminToken resolves a bearer token when present but lets the
// request through either way. Public read endpoints use it so authenticated
// admins see unpublished content.
func OptionalAdminToken(adminRepo repository.AdminRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if admin, _, _ := adminFromRequest(c, adminRepo); admin != nil {
			c.Locals(LocalAdminKey, admin)
		}
		return c.Next()
	}
}

// AdminFromContext returns the authenticated admin, or nil for anonymous
// requests.
func AdminFromContext(c *fiber.Ctx) *models.Admin {
	admin, _ := c.Locals(LocalAdminKey).(*models.Admin)
	return admin
}

func adminFromRequest(c *fiber.Ctx, adminRepo repository.AdminRepository) (*models.Admin, int, string) {
	token := extractBearerToken(c)
	if token == "" {
		return nil, fiber.StatusUnauthorized, "पहुंच अस्वीकृत - टोकन आवश्यक"
	}

	secret := env.GetEnv("JWT_SECRET", "")
	adminID, err := security.ParseAdminToken(token, secret)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, fiber.StatusUnauthorized, "टोकन की अवधि समाप्त हो गई है"
		}
		return nil, fiber.StatusUnauthorized, "अमान्य टोकन"
	}

	admin, err := adminRepo.GetByID(adminID)
	if err != nil {
		return nil, fiber.StatusUnauthorized, "अमान्य टोकन - व्यवस्थापक नहीं मिला"
	}
	if !admin.IsActive {
		return nil, fiber.StatusUnauthorized, "खाता निष्क्रिय है"
	}

	return admin, fiber.StatusOK, ""
}

func extractBearerToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
