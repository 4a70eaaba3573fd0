package controllers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/cache"
)

const (
	marqueeCacheTTL       = 30 * time.Second
	marqueeCacheKeyPrefix = "marquee:active:"
)

// MarqueeController handles the marquee banner endpoints. The public list is
// cached in Redis for a short TTL and invalidated on every write.
type MarqueeController struct {
	marqueeRepo repository.MarqueeRepository
}

func NewMarqueeController(marqueeRepo repository.MarqueeRepository) *MarqueeController {
	return &MarqueeController{marqueeRepo: marqueeRepo}
}

type marqueeRequest struct {
	Content  string `json:"content" form:"content"`
	Type     string `json:"type" form:"type"`
	IsActive *bool  `json:"isActive" form:"isActive"`
	Order    *int   `json:"order" form:"order"`
}

// HandleListActive serves GET /api/marquee?type=breaking|announcement for
// the public site. Only active entries, display order ascending. Unknown
// type values mean the unfiltered list, so the cache key space stays closed
// to the three variants invalidateCache knows about.
func (mc *MarqueeController) HandleListActive(c *fiber.Ctx) error {
	marqueeType := normalizeMarqueeType(c.Query("type"))
	cacheKey := marqueeCacheKeyPrefix + marqueeType

	if cached, err := cache.Get(cacheKey); err == nil && cached != "" {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	items, err := mc.marqueeRepo.GetActive(marqueeType)
	if err != nil {
		fiberlog.Errorf("marquee list failed: %v", err)
		return respondServerError(c)
	}

	body, err := json.Marshal(fiber.Map{
		"success": true,
		"data":    items,
	})
	if err != nil {
		fiberlog.Errorf("marquee marshal failed: %v", err)
		return respondServerError(c)
	}
	if err := cache.Set(cacheKey, string(body), marqueeCacheTTL); err != nil {
		fiberlog.Warnf("marquee cache set failed: %v", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// HandleListAll serves GET /api/marquee/all for the admin panel, active or
// not.
func (mc *MarqueeController) HandleListAll(c *fiber.Ctx) error {
	items, err := mc.marqueeRepo.GetAll()
	if err != nil {
		fiberlog.Errorf("marquee list failed: %v", err)
		return respondServerError(c)
	}
	return respondData(c, fiber.StatusOK, items)
}

// HandleCreate serves POST /api/marquee.
func (mc *MarqueeController) HandleCreate(c *fiber.Ctx) error {
	var req marqueeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, []string{"अमान्य अनुरोध"})
	}

	item := &models.MarqueeContent{
		Content:  strings.TrimSpace(req.Content),
		Type:     strings.TrimSpace(req.Type),
		IsActive: true,
	}
	if item.Type == "" {
		item.Type = models.MARQUEE_TYPE_ANNOUNCEMENT
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if err := item.Validate(); err != nil {
		return respondValidationError(c, validationMessages(err))
	}

	if err := mc.marqueeRepo.Create(item); err != nil {
		fiberlog.Errorf("marquee create failed: %v", err)
		return respondServerError(c)
	}
	mc.invalidateCache()

	return respondMessage(c, fiber.StatusCreated, "मार्की सामग्री सफलतापूर्वक बनाई गई", item)
}

// HandleUpdate serves PUT /api/marquee/:id.
func (mc *MarqueeController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "मार्की सामग्री नहीं मिली")
	}

	item, err := mc.marqueeRepo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "मार्की सामग्री नहीं मिली")
		}
		fiberlog.Errorf("marquee load failed: %v", err)
		return respondServerError(c)
	}

	var req marqueeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidationError(c, []string{"अमान्य अनुरोध"})
	}

	if req.Content != "" {
		item.Content = strings.TrimSpace(req.Content)
	}
	if t := strings.TrimSpace(req.Type); t != "" {
		item.Type = t
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if err := item.Validate(); err != nil {
		return respondValidationError(c, validationMessages(err))
	}

	if err := mc.marqueeRepo.Update(item); err != nil {
		fiberlog.Errorf("marquee update failed: %v", err)
		return respondServerError(c)
	}
	mc.invalidateCache()

	return respondMessage(c, fiber.StatusOK, "मार्की सामग्री सफलतापूर्वक अपडेट की गई", item)
}

// HandleDelete serves DELETE /api/marquee/:id.
func (mc *MarqueeController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondNotFound(c, "मार्की सामग्री नहीं मिली")
	}

	if _, err := mc.marqueeRepo.GetByID(id); err != nil {
		if isNotFound(err) {
			return respondNotFound(c, "मार्की सामग्री नहीं मिली")
		}
		fiberlog.Errorf("marquee load failed: %v", err)
		return respondServerError(c)
	}

	if err := mc.marqueeRepo.Delete(id); err != nil {
		fiberlog.Errorf("marquee delete failed: %v", err)
		return respondServerError(c)
	}
	mc.invalidateCache()

	return respondMessage(c, fiber.StatusOK, "मार्की सामग्री सफलतापूर्वक हटाई गई", nil)
}

func normalizeMarqueeType(raw string) string {
	switch t := strings.TrimSpace(raw); t {
	case models.MARQUEE_TYPE_BREAKING, models.MARQUEE_TYPE_ANNOUNCEMENT:
		return t
	default:
		return ""
	}
}

// invalidateCache drops every cached variant of the public list. Misses are
// harmless; the next read repopulates.
func (mc *MarqueeController) invalidateCache() {
	for _, key := range []string{
		marqueeCacheKeyPrefix,
		marqueeCacheKeyPrefix + models.MARQUEE_TYPE_BREAKING,
		marqueeCacheKeyPrefix + models.MARQUEE_TYPE_ANNOUNCEMENT,
	} {
		if err := cache.Delete(key); err != nil {
			fiberlog.Warnf("marquee cache invalidation failed: %v", err)
		}
	}
}
