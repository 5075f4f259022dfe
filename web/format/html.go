// Package format renders reply markdown for the desktop client.
package format

import (
	"strings"

	"github.com/gomarkdown/markdown"
)

// PreprocessReply normalizes model output before rendering.
func PreprocessReply(text string) string {
	if text == "" {
		return text
	}

	// Replace curly quotes (helps readability)
	return strings.NewReplacer(
		"“", "\"",
		"”", "\"",
		"‘", "'",
		"’", "'",
	).Replace(text)
}

// RenderHTML converts a markdown reply to HTML. The desktop renderer
// displays this directly instead of re-implementing markdown parsing.
func RenderHTML(reply string) string {
	md := []byte(PreprocessReply(reply))
	return strings.TrimSpace(string(markdown.ToHTML(md, nil, nil)))
}
