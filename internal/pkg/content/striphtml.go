package content

import "strings"

// StripHTML removes markup from rich-text HTML, keeping the visible text.
// Block-level closers become spaces so words do not run together.
func StripHTML(html string) string {
	text := strings.ReplaceAll(html, "<br>", " ")
	text = strings.ReplaceAll(text, "<br/>", " ")
	text = strings.ReplaceAll(text, "</p>", " ")
	text = strings.ReplaceAll(text, "</div>", " ")
	text = strings.ReplaceAll(text, "</li>", " ")

	var b strings.Builder
	var inTag bool
	for _, r := range text {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			continue
		}
		if !inTag {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// TruncateForPreview shortens stripped text to at most max runes for use in
// OG/Twitter description tags.
func TruncateForPreview(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max]))
}
