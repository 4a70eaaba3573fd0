package imageprocessor

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"

	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

// Social preview dimensions expected by link-preview crawlers.
const (
	SocialWidth  = 1200
	SocialHeight = 630
)

var decodableExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// GenerateSocialVariant renders a 1200x630 crop of a stored featured image
// and saves it next to the original as <name>_social.jpg. Returns the
// variant's relative path, or "" when the source format cannot be decoded
// (webp uploads are served as-is).
func GenerateSocialVariant(store *storage.LocalStore, relPath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(relPath))
	if !decodableExt[ext] {
		return "", nil
	}

	abs, ok := store.AbsPath(relPath)
	if !ok {
		return "", fmt.Errorf("invalid stored path %q", relPath)
	}

	img, err := imaging.Open(abs, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", relPath, err)
	}

	variant := imaging.Fill(img, SocialWidth, SocialHeight, imaging.Center, imaging.Lanczos)

	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)) + "_social.jpg"
	variantAbs := filepath.Join(filepath.Dir(abs), name)
	if err := imaging.Save(variant, variantAbs, imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save social variant: %w", err)
	}

	rel := storage.PublicPrefix + "/" + name
	log.Debugf("[ImageProcessor] social variant %s for %s", rel, relPath)
	return rel, nil
}
