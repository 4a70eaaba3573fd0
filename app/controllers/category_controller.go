package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
)

// CategoryController handles the category endpoints. Deleting a category
// does not touch articles referencing it; the name just goes orphaned.
type CategoryController struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryController(categoryRepo repository.CategoryRepository) *CategoryController {
	return &CategoryController{categoryRepo: categoryRepo}
}

type categoryRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// HandleList serves GET /api/categories.
func (cc *CategoryController) HandleList(c *fiber.Ctx) error {
	categories, err := cc.categoryRepo.GetAll()
	if err != nil {
		fiberlog.Errorf("category list failed: %v", err)
		return respondServerError(c)
	}
	return respondData(c, fiber.StatusOK, categories)
}

// HandleCreate serves POST /api/categories.
func (cc *CategoryController) HandleCreate(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, []string{"अमान्य अनुरोध"})
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if err := category.Validate(); err != nil {
		return respondValidationError(c, validationMessages(err))
	}

	exists, err := cc.categoryRepo.NameExists(category.Name)
	if err != nil {
		fiberlog.Errorf("category check failed: %v", err)
		return respondServerError(c)
	}
	if exists {
		return respondValidationError(c, []string{"इस नाम की श्रेणी पहले से मौजूद है"})
	}

	if err := cc.categoryRepo.Create(category); err != nil {
		fiberlog.Errorf("category create failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusCreated, "श्रेणी सफलतापूर्वक बनाई गई", category)
}

// HandleUpdate serves PUT /api/categories/:id.
func (cc *CategoryController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "श्रेणी नहीं मिली")
	}

	category, err := cc.categoryRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "श्रेणी नहीं मिली")
		}
		fiberlog.Errorf("category load failed: %v", err)
		return respondServerError(c)
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, []string{"अमान्य अनुरोध"})
	}

	newName := strings.TrimSpace(req.Name)
	if newName != category.Name {
		exists, err := cc.categoryRepo.NameExists(newName)
		if err != nil {
			fiberlog.Errorf("category check failed: %v", err)
			return respondServerError(c)
		}
		if exists {
			return respondValidationError(c, []string{"इस नाम की श्रेणी पहले से मौजूद है"})
		}
	}

	category.Name = newName
	category.Description = strings.TrimSpace(req.Description)
	if err := category.Validate(); err != nil {
		return respondValidationError(c, validationMessages(err))
	}

	if err := cc.categoryRepo.Update(category); err != nil {
		fiberlog.Errorf("category update failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusOK, "श्रेणी सफलतापूर्वक अपडेट की गई", category)
}

// HandleDelete serves DELETE /api/categories/:id.
func (cc *CategoryController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "श्रेणी नहीं मिली")
	}

	if _, err := cc.categoryRepo.GetByID(id); err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "श्रेणी नहीं मिली")
		}
		fiberlog.Errorf("category load failed: %v", err)
		return respondServerError(c)
	}

	if err := cc.categoryRepo.Delete(id); err != nil {
		fiberlog.Errorf("category delete failed: %v", err)
		return respondServerError(c)
	}

	return respondMessage(c, fiber.StatusOK, "श्रेणी सफलतापूर्वक हटाई गई", nil)
}
