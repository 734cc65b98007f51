package domain

import (
	"strings"

	"github.com/gosimple/slug"
)

// MaxSlugLength is the widest slug column (topics.slug).
const MaxSlugLength = 255

func init() {
	// Symbols become separators, not the English words of slug's default table.
	slug.CustomRuneSubstitution = map[rune]string{'&': "-", '@': "-"}
}

// Slugify derives a URL-safe identifier from a human-readable name:
// lowercase, runs of non-alphanumerics become a single hyphen, no leading or
// trailing hyphen. The result is cut at a word boundary to MaxSlugLength.
func Slugify(s string) string {
	out := slug.Make(s)
	if len(out) <= MaxSlugLength {
		return out
	}
	out = out[:MaxSlugLength]
	if i := strings.LastIndexByte(out, '-'); i > 0 {
		out = out[:i]
	}
	return strings.Trim(out, "-")
}

// AssignSlug returns current when it is already set; otherwise it derives a
// slug from explicit (if given) or from name. Slugs are never regenerated.
func AssignSlug(current, explicit, name string) string {
	if current != "" {
		return current
	}
	if s := Slugify(explicit); s != "" {
		return s
	}
	return Slugify(name)
}
