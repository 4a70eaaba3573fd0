package upload

import (
	"net/http"
	"path/filepath"
	"strings"
)

// Policy limits. Enforcement happens here at multipart-ingestion time, before
// anything reaches the file store; the store itself accepts any payload.
const (
	MaxImageBytes = 5 * 1024 * 1024
	MaxVideoBytes = 500 * 1024 * 1024
	MaxFiles      = 15
)

// Kind classifies a policy violation so handlers can answer with a specific
// message per violation instead of inspecting error strings.
type Kind int

const (
	KindNone Kind = iota
	KindTooLarge
	KindBadType
	KindTooMany
)

// Violation is a closed upload-policy error.
type Violation struct {
	Kind    Kind
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedVideoExt = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".mkv":  true,
}

// ValidateImage checks an uploaded image part by extension, sniffed content
// and size. Returns the detected mime or a Violation.
func ValidateImage(filename string, head []byte, size int64) (string, error) {
	if size > MaxImageBytes {
		return "", &Violation{Kind: KindTooLarge, Message: "छवि 5MB से बड़ी नहीं हो सकती"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", &Violation{Kind: KindBadType, Message: "केवल छवि फाइलें अनुमत हैं (jpeg, jpg, png, gif, webp)"}
	}

	detected := http.DetectContentType(head)

	// Block scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "text/xml") ||
		strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", &Violation{Kind: KindBadType, Message: "अमान्य फाइल प्रकार"}
	}

	if strings.HasPrefix(detected, "image/") {
		return detected, nil
	}
	// webp inside RIFF containers can sniff as octet-stream; trust the
	// already-checked extension then.
	if detected == "application/octet-stream" {
		return detected, nil
	}

	return "", &Violation{Kind: KindBadType, Message: "केवल छवि फाइलें अनुमत हैं (jpeg, jpg, png, gif, webp)"}
}

// ValidateVideo checks an uploaded video part by extension, sniffed content
// and size.
func ValidateVideo(filename string, head []byte, size int64) (string, error) {
	if size > MaxVideoBytes {
		return "", &Violation{Kind: KindTooLarge, Message: "वीडियो 500MB से बड़ा नहीं हो सकता"}
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedVideoExt[ext] {
		return "", &Violation{Kind: KindBadType, Message: "केवल वीडियो फाइलें अनुमत हैं (mp4, avi, mov, wmv, flv, webm, mkv)"}
	}

	detected := http.DetectContentType(head)
	if strings.HasPrefix(detected, "video/") || detected == "application/octet-stream" {
		return detected, nil
	}

	return "", &Violation{Kind: KindBadType, Message: "केवल वीडियो फाइलें अनुमत हैं (mp4, avi, mov, wmv, flv, webm, mkv)"}
}

// CheckFileCount guards the whole multipart request.
func CheckFileCount(n int) error {
	if n > MaxFiles {
		return &Violation{Kind: KindTooMany, Message: "बहुत सारी फाइलें"}
	}
	return nil
}

// AsViolation unwraps a policy violation from an error chain.
func AsViolation(err error) (*Violation, bool) {
	v, ok := err.(*Violation)
	return v, ok
}
