package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugcPolicy allows the basic formatting tags users may paste into
	// comments and bios; everything else (scripts, styles, iframes) is
	// stripped.
	ugcPolicy = bluemonday.UGCPolicy()

	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)
)

// SanitizeUserContent strips unsafe HTML from user-generated text such
// as comment bodies, artwork descriptions, and profile bios.
func SanitizeUserContent(input string) string {
	return strings.TrimSpace(ugcPolicy.Sanitize(input))
}

// ValidateUsername reports whether the username is 3-30 characters of
// letters, digits, underscores, or hyphens.
func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}

// EscapeSQLWildcards escapes LIKE/ILIKE wildcard characters so user
// input can be embedded in a pattern safely.
func EscapeSQLWildcards(input string) string {
	input = strings.ReplaceAll(input, "\\", "\\\\")
	input = strings.ReplaceAll(input, "%", "\\%")
	input = strings.ReplaceAll(input, "_", "\\_")
	return input
}

// SanitizeSearchQuery prepares a search term for ILIKE matching.
func SanitizeSearchQuery(input string) string {
	input = strings.TrimSpace(input)
	if len(input) > 100 {
		input = input[:100]
	}
	return "%" + EscapeSQLWildcards(input) + "%"
}

// TruncateString caps a string at maxLen bytes without splitting a
// multi-byte rune.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
