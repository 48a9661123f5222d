package utils

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\-\s]+`)

// SafeFilename turns a quest title into a filesystem-safe name for generated
// artifacts like QR images.
func SafeFilename(text, def string) string {
	if text == "" {
		return def
	}
	clean := unsafeChars.ReplaceAllString(text, "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return def
	}
	return strings.ReplaceAll(clean, " ", "_")
}
