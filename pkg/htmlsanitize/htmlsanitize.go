// Package htmlsanitize cleans contributor-supplied rich text before it is
// rendered. Stored content is never modified; sanitizing happens on output.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy = newPolicy()
	strict = bluemonday.StrictPolicy()

	blockTag = regexp.MustCompile(`(?i)<(br|/?(?:p|div|h[1-6]|li|ul|ol|blockquote|pre|table|tr|td|th))\b`)
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Editors emit language hints for syntax highlighting.
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[a-zA-Z0-9+#-]+$`)).OnElements("code", "pre")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize strips scripts, event handlers, unsafe URLs and any element
// outside the user-generated-content allowlist.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for html/template.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s)) //nolint:gosec // sanitized above
}

// IsPlainText reports whether s looks like it has no markup.
func IsPlainText(s string) bool {
	return !strings.Contains(s, "<") || !strings.Contains(s, ">")
}

// PlainTextToHTML escapes s and wraps it in a paragraph, turning newlines
// into line breaks.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(strings.ReplaceAll(s, "\r\n", "\n"))
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders topic content: markup is sanitized, plain text
// is escaped and paragraphed.
func PrepareForDisplay(s string) template.HTML {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s)) //nolint:gosec // escaped
	}
	return SanitizeToHTML(s)
}

// Excerpt returns the text of s with all markup removed, cut to at most
// limit runes on a word boundary. Used for listing cards.
func Excerpt(s string, limit int) string {
	spaced := blockTag.ReplaceAllString(s, " <$1")
	text := strings.Join(strings.Fields(html.UnescapeString(strict.Sanitize(spaced))), " ")
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	cut := string([]rune(text)[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
