package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/SandeshLive/Sandesh/app/repository"
	"github.com/SandeshLive/Sandesh/internal/pkg/preview"
)

// PreviewController serves the crawler-facing article documents. Human
// visitors get a redirect into the SPA; link-preview crawlers get a static
// HTML head full of Open Graph and Twitter Card tags.
type PreviewController struct {
	newsRepo repository.NewsRepository
	site     preview.Site
}

func NewPreviewController(newsRepo repository.NewsRepository, site preview.Site) *PreviewController {
	return &PreviewController{newsRepo: newsRepo, site: site}
}

// HandleArticlePreview serves GET /news/:slug.
func (pc *PreviewController) HandleArticlePreview(c *fiber.Ctx) error {
	slug := c.Params("slug")

	if !preview.IsSocialCrawler(c.Get(fiber.HeaderUserAgent)) {
		return c.Redirect("/#/news/"+slug, fiber.StatusFound)
	}

	news, err := pc.newsRepo.GetPublishedBySlug(slug)
	if err != nil {
		if isNotFound(err) {
			return c.Status(fiber.StatusNotFound).Render("preview_notfound", preview.NotFoundMeta(pc.site, slug))
		}
		fiberlog.Errorf("preview lookup failed: %v", err)
		return respondServerError(c)
	}

	return c.Render("preview", preview.ArticleMeta(pc.site, news))
}
