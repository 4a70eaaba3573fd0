package preview

import (
	"regexp"
	"strings"
	"time"

	"github.com/SandeshLive/Sandesh/app/models"
	"github.com/SandeshLive/Sandesh/internal/pkg/content"
	"github.com/SandeshLive/Sandesh/internal/pkg/env"
	"github.com/SandeshLive/Sandesh/internal/pkg/viewmodel"
)

// DescriptionLimit is the rune cap for OG/Twitter description tags.
const DescriptionLimit = 185

// crawlerRe matches the user agents of known link-preview fetchers. Humans
// never match and get redirected to the SPA instead.
var crawlerRe = regexp.MustCompile(`(?i)(facebookexternalhit|Twitterbot|WhatsApp|telegrambot|slackbot|vkShare|Discordbot|LinkedInBot|Pinterest|SkypeUriPreview)`)

// IsSocialCrawler reports whether the request comes from a link-preview bot.
func IsSocialCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}
	return crawlerRe.MatchString(userAgent)
}

// Site is the publicly visible identity used in preview documents.
type Site struct {
	Name        string
	BaseURL     string
	LogoPath    string
	TwitterSite string
	Lang        string
}

// SiteFromEnv assembles the site identity from configuration.
func SiteFromEnv() Site {
	return Site{
		Name:        env.GetEnv("SITE_NAME", "Sandesh Live"),
		BaseURL:     strings.TrimRight(env.GetEnv("PUBLIC_BASE_URL", "https://sandeshlive.in"), "/"),
		LogoPath:    env.GetEnv("SITE_LOGO_PATH", "/favicon.png"),
		TwitterSite: env.GetEnv("SITE_TWITTER", "@sandeshlive"),
		Lang:        env.GetEnv("SITE_LANG", "hi"),
	}
}

// AbsoluteURL turns a stored relative path into an absolute one against the
// site base; already-absolute URLs pass through.
func (s Site) AbsoluteURL(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.BaseURL + path
}

// ArticleMeta builds the OG view model for a published article.
func ArticleMeta(s Site, news *models.News) *viewmodel.OpenGraph {
	title := content.StripHTML(news.Title)

	desc := news.ShortDescription
	if desc == "" {
		desc = news.Description
	}
	desc = content.TruncateForPreview(content.StripHTML(desc), DescriptionLimit)

	image := news.SocialImageURL
	if image == "" {
		image = news.ImageURL
	}
	absImage := s.AbsoluteURL(image)
	if absImage == "" {
		absImage = s.AbsoluteURL(s.LogoPath)
	}

	slugPath := "/news/" + news.SlugValue()

	return &viewmodel.OpenGraph{
		SiteName:      s.Name,
		Title:         title,
		Description:   desc,
		URL:           s.AbsoluteURL(slugPath),
		Image:         absImage,
		ImageWidth:    1200,
		ImageHeight:   630,
		Author:        s.Name,
		Section:       news.Category,
		PublishedTime: news.CreatedAt.UTC().Format(time.RFC3339),
		TwitterSite:   s.TwitterSite,
		Lang:          s.Lang,
		RedirectURL:   "/#" + slugPath,
	}
}

// NotFoundMeta builds the fallback view model for an unknown slug. The
// document carries a noindex directive alongside generic site tags.
func NotFoundMeta(s Site, slug string) *viewmodel.OpenGraph {
	return &viewmodel.OpenGraph{
		SiteName:    s.Name,
		Title:       "समाचार नहीं मिला | " + s.Name,
		Description: "यह समाचार उपलब्ध नहीं है.",
		URL:         s.AbsoluteURL("/news/" + slug),
		Image:       s.AbsoluteURL(s.LogoPath),
		TwitterSite: s.TwitterSite,
		Lang:        s.Lang,
		RedirectURL: "/#/",
	}
}
