package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Every API response uses the same envelope: {success, message?, data?,
// errors?}. The helpers below keep the handlers short.

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondValidationError(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "मान्यकरण त्रुटि",
		"errors":  errs,
	})
}

func respondServerError(c *fiber.Ctx) error {
	return respondError(c, fiber.StatusInternalServerError, "सर्वर त्रुटि")
}

func respondNotFound(c *fiber.Ctx, message string) error {
	return respondError(c, fiber.StatusNotFound, message)
}

// validationMessages flattens validator.ValidationErrors into field-level
// strings for the errors array.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("%s: %s अमान्य है", fe.Field(), fe.Tag()))
	}
	return out
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id parameter")
	}
	return uint(id), nil
}

// parsePagination reads page/limit query values with defaults of 1/10 and a
// limit cap of 100.
func parsePagination(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit, (page - 1) * limit
}

// paginationMap builds the pagination block returned by list endpoints.
func paginationMap(page, limit int, total int64) fiber.Map {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"pages": pages,
	}
}
