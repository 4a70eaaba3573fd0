package content

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// BinarySaver is the slice of the file store the extractor needs.
type BinarySaver interface {
	SaveBytes(data []byte, originalName string) (string, error)
}

var inlineImageRe = regexp.MustCompile(`<img[^>]+src="data:image/([a-zA-Z]+);base64,([^"]+)"`)

var srcAttrRe = regexp.MustCompile(`src="data:image/[^"]+"`)

// ExtractInlineImages scans rich-text HTML for <img> tags whose src is a
// base64 data URI, decodes each payload into a stored file and rewrites the
// src to the returned relative path. Matches are processed in document order;
// tags without data URIs are untouched. After one successful pass the output
// contains no base64 srcs, so the transform is idempotent.
//
// A malformed payload or storage failure aborts the whole call. Files already
// written in the same pass are not rolled back; the caller treats the request
// as failed and the leaked files are accepted.
func ExtractInlineImages(html string, store BinarySaver) (string, error) {
	matches := inlineImageRe.FindAllStringSubmatch(html, -1)
	if len(matches) == 0 {
		return html, nil
	}

	out := html
	for i, m := range matches {
		imageType := strings.ToLower(m[1])
		payload := m[2]
		if payload == "" {
			continue
		}

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", fmt.Errorf("decode inline image %d: %w", i, err)
		}

		ext := imageType
		if ext == "jpeg" {
			ext = "jpg"
		}

		relPath, err := store.SaveBytes(data, fmt.Sprintf("inline-%d.%s", i, ext))
		if err != nil {
			return "", fmt.Errorf("store inline image %d: %w", i, err)
		}

		oldTag := m[0]
		newTag := srcAttrRe.ReplaceAllString(oldTag, `src="`+relPath+`"`)
		out = strings.Replace(out, oldTag, newTag, 1)
	}

	return out, nil
}
