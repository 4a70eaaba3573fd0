package imageprocessor

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SandeshLive/Sandesh/internal/pkg/storage"
)

func TestGenerateSocialVariant(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	src := imaging.New(1600, 900, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
	srcPath := filepath.Join(root, "featured-123.jpg")
	require.NoError(t, imaging.Save(src, srcPath))

	rel, err := GenerateSocialVariant(store, "/uploads/featured-123.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/featured-123_social.jpg", rel)

	abs, ok := store.AbsPath(rel)
	require.True(t, ok)
	out, err := imaging.Open(abs)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, SocialWidth, SocialHeight), out.Bounds())
}

func TestGenerateSocialVariantSkipsUndecodable(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	rel, err := GenerateSocialVariant(store, "/uploads/animation.webp")
	require.NoError(t, err)
	assert.Equal(t, "", rel)
}

func TestGenerateSocialVariantMissingSource(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	_, err = GenerateSocialVariant(store, "/uploads/not-there.jpg")
	assert.Error(t, err)
}
