package preview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SandeshLive/Sandesh/app/models"
)

func testSite() Site {
	return Site{
		Name:        "Sandesh Live",
		BaseURL:     "https://sandeshlive.in",
		LogoPath:    "/favicon.png",
		TwitterSite: "@sandeshlive",
		Lang:        "hi",
	}
}

func TestIsSocialCrawler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want bool
	}{
		{"facebook", "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", true},
		{"twitter", "Twitterbot/1.0", true},
		{"whatsapp", "WhatsApp/2.23.20 A", true},
		{"telegram case-insensitive", "TelegramBot (like TwitterBot)", true},
		{"discord", "Mozilla/5.0 (compatible; Discordbot/2.0)", true},
		{"chrome", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", false},
		{"curl", "curl/8.4.0", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsSocialCrawler(tc.ua))
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	t.Parallel()

	s := testSite()
	assert.Equal(t, "", s.AbsoluteURL(""))
	assert.Equal(t, "https://sandeshlive.in/uploads/a.png", s.AbsoluteURL("/uploads/a.png"))
	assert.Equal(t, "https://sandeshlive.in/uploads/a.png", s.AbsoluteURL("uploads/a.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", s.AbsoluteURL("https://cdn.example.com/a.png"))
}

func TestArticleMeta(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 5, 12, 9, 30, 0, 0, time.UTC)
	news := &models.News{
		Title:            "<b>गांव में मेला</b>",
		ShortDescription: "मेले की पूरी जानकारी",
		Description:      "<p>लंबा विवरण</p>",
		Category:         "ग्राम समाचार",
		ImageURL:         "/uploads/mela.jpg",
		CreatedAt:        created,
	}
	news.SetSlug("gaon-mela")

	og := ArticleMeta(testSite(), news)

	assert.Equal(t, "गांव में मेला", og.Title, "title must be stripped of markup")
	assert.Equal(t, "मेले की पूरी जानकारी", og.Description)
	assert.Equal(t, "https://sandeshlive.in/news/gaon-mela", og.URL)
	assert.Equal(t, "https://sandeshlive.in/uploads/mela.jpg", og.Image)
	assert.Equal(t, 1200, og.ImageWidth)
	assert.Equal(t, 630, og.ImageHeight)
	assert.Equal(t, "ग्राम समाचार", og.Section)
	assert.Equal(t, "2024-05-12T09:30:00Z", og.PublishedTime)
	assert.Equal(t, "/#/news/gaon-mela", og.RedirectURL)
}

func TestArticleMetaFallbacks(t *testing.T) {
	t.Parallel()

	news := &models.News{
		Title:       "खबर",
		Description: "<p>विवरण के कई शब्द यहां हैं</p>",
		Category:    "अन्य",
		CreatedAt:   time.Now(),
	}
	news.SetSlug("khabar")

	og := ArticleMeta(testSite(), news)

	// no shortDescription: derived from stripped body
	assert.Equal(t, "विवरण के कई शब्द यहां हैं", og.Description)
	// no image: site logo, absolute
	assert.Equal(t, "https://sandeshlive.in/favicon.png", og.Image)
}

func TestArticleMetaPrefersSocialVariant(t *testing.T) {
	t.Parallel()

	news := &models.News{
		Title:          "खबर",
		Description:    "d",
		Category:       "अन्य",
		ImageURL:       "/uploads/orig.jpg",
		SocialImageURL: "/uploads/orig_social.jpg",
		CreatedAt:      time.Now(),
	}
	news.SetSlug("khabar")

	og := ArticleMeta(testSite(), news)
	assert.Equal(t, "https://sandeshlive.in/uploads/orig_social.jpg", og.Image)
}

func TestNotFoundMeta(t *testing.T) {
	t.Parallel()

	og := NotFoundMeta(testSite(), "missing-slug")
	assert.Contains(t, og.Title, "समाचार नहीं मिला")
	assert.Equal(t, "https://sandeshlive.in/news/missing-slug", og.URL)
	assert.Equal(t, "https://sandeshlive.in/favicon.png", og.Image)
}
