package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHead = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		head     []byte
		size     int64
		wantKind Kind
	}{
		{"valid png", "photo.png", pngHead, 1024, KindNone},
		{"valid jpg by extension octet sniff", "photo.jpg", []byte{0x00, 0x01}, 1024, KindNone},
		{"oversized", "photo.png", pngHead, MaxImageBytes + 1, KindTooLarge},
		{"disallowed extension", "notes.txt", pngHead, 10, KindBadType},
		{"svg blocked", "img.png", []byte(`<?xml version="1.0"?><svg xmlns="x"></svg>`), 10, KindBadType},
		{"html blocked", "img.png", []byte("<!DOCTYPE html><html><body>x</body></html>"), 10, KindBadType},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateImage(tc.filename, tc.head, tc.size)
			if tc.wantKind == KindNone {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			v, ok := AsViolation(err)
			require.True(t, ok, "expected a policy violation, got %T", err)
			assert.Equal(t, tc.wantKind, v.Kind)
		})
	}
}

func TestValidateVideo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		size     int64
		wantKind Kind
	}{
		{"valid mp4", "clip.mp4", 1 << 20, KindNone},
		{"oversized", "clip.mp4", MaxVideoBytes + 1, KindTooLarge},
		{"bad extension", "clip.exe", 1024, KindBadType},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateVideo(tc.filename, []byte{0x00, 0x01, 0x02}, tc.size)
			if tc.wantKind == KindNone {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			v, ok := AsViolation(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantKind, v.Kind)
		})
	}
}

func TestCheckFileCount(t *testing.T) {
	t.Parallel()

	assert.NoError(t, CheckFileCount(MaxFiles))
	err := CheckFileCount(MaxFiles + 1)
	require.Error(t, err)
	v, ok := AsViolation(err)
	require.True(t, ok)
	assert.Equal(t, KindTooMany, v.Kind)
}
