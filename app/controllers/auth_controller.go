package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
	"github.com/SandeshLive/Sandesh/internal/pkg/middleware"
	"github.com/SandeshLive/Sandesh/internal/pkg/security"
)

// AuthController handles admin login and profile requests.
type AuthController struct {
	adminRepo repository.AdminRepository
}

// NewAuthController creates the controller with its repository.
func NewAuthController(adminRepo repository.AdminRepository) *AuthController {
	return &AuthController{adminRepo: adminRepo}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a bearer token. Wrong email,
// wrong password and inactive account all answer the same 401 so the
// response does not leak which part failed.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, []string{"अमान्य अनुरोध"})
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return respondValidationError(c, []string{"ईमेल और पासवर्ड आवश्यक हैं"})
	}

	admin, err := ac.adminRepo.GetByEmail(req.Email)
	if err != nil {
		if isNotFound(err) {
			return respondError(c, fiber.StatusUnauthorized, "अमान्य ईमेल या पासवर्ड")
		}
		fiberlog.Errorf("login lookup failed: %v", err)
		return respondServerError(c)
	}

	if !admin.IsActive {
		return respondError(c, fiber.StatusUnauthorized, "खाता निष्क्रिय है")
	}

	if !admin.CheckPassword(req.Password) {
		return respondError(c, fiber.StatusUnauthorized, "अमान्य ईमेल या पासवर्ड")
	}

	token, err := security.GenerateAdminToken(admin.ID, env.GetEnv("JWT_SECRET", ""))
	if err != nil {
		fiberlog.Errorf("token generation failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusOK, "लॉगिन सफल", fiber.Map{
		"token": token,
		"admin": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// HandleProfile returns the authenticated admin's public fields.
func (ac *AuthController) HandleProfile(c *fiber.Ctx) error {
	admin := middleware.AdminFromContext(c)
	if admin == nil {
		return respondError(c, fiber.StatusUnauthorized, "प्रमाणीकरण आवश्यक")
	}

	return respondData(c, fiber.StatusOK, fiber.Map{
		"id":    admin.ID,
		"name":  admin.Name,
		"email": admin.Email,
		"role":  admin.Role,
	})
}
