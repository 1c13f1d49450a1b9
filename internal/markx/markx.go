// Package markx prepares assistant replies for terminal display. The
// conversational endpoint returns markdown, which is converted to HTML and
// sanitized before any further use; the filtered-query endpoint returns
// plain text that only needs light cleanup.
package markx

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var sanitizer = bluemonday.UGCPolicy()

// RenderMarkdown converts markdown to sanitized HTML. Untrusted model output
// goes through the sanitizer unconditionally.
func RenderMarkdown(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}

var (
	leadingBullets = regexp.MustCompile(`(?m)^\s*\*+\s?`)
	boldMarkers    = regexp.MustCompile(`\*\*`)
	blankRuns      = regexp.MustCompile(`\n{3,}`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// CleanModelResponse lightly normalizes a plain-text model reply: leading
// bullet markers are stripped, bold markers removed, and runs of three or
// more newlines collapsed to a paragraph break.
func CleanModelResponse(text string) string {
	if text == "" {
		return ""
	}
	text = leadingBullets.ReplaceAllString(text, "")
	text = boldMarkers.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// Paragraphs splits cleaned text into non-blank paragraphs for line-by-line
// display.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// HTMLToText projects sanitized HTML onto plain terminal text: block-level
// closings become newlines, list items get a dash, remaining tags are
// dropped and entities unescaped.
func HTMLToText(html string) string {
	replacer := strings.NewReplacer(
		"</p>", "\n\n",
		"</li>", "\n",
		"<li>", "- ",
		"</h1>", "\n\n", "</h2>", "\n\n", "</h3>", "\n\n",
		"</h4>", "\n\n", "</h5>", "\n\n", "</h6>", "\n\n",
		"<br>", "\n", "<br/>", "\n", "<br />", "\n",
		"</blockquote>", "\n",
		"</pre>", "\n",
	)
	text := replacer.Replace(html)
	text = tagPattern.ReplaceAllString(text, "")

	entities := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#34;", `"`,
		"&#39;", "'",
		"&ldquo;", `"`,
		"&rdquo;", `"`,
		"&rsquo;", "'",
	)
	text = entities.Replace(text)
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
