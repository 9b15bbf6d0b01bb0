package utils

import (
	"regexp"
	"strings"
)

var (
	reSlugStrip = regexp.MustCompile(`[^a-z0-9\s]`)
	reSlugSpace = regexp.MustCompile(`\s+`)
)

// Slugify lowercases text, drops everything that is not [a-z0-9] or
// whitespace, trims, and joins the remaining words with single hyphens.
//
//	Slugify("Lombok 3D2N")        // "lombok-3d2n"
//	Slugify("Bali & Nusa Penida") // "bali-nusa-penida"
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = reSlugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return reSlugSpace.ReplaceAllString(s, "-")
}
