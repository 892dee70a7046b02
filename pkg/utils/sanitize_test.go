package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exact", TruncateString("exact", 5))
	assert.Equal(t, "ab", TruncateString("abcd", 2))
}

func TestTruncateString_RuneBoundary(t *testing.T) {
	// "é" is 2 bytes; a byte cap landing mid-rune must back up rather
	// than store invalid UTF-8.
	s := "café"
	got := TruncateString(s, 4)
	assert.Equal(t, "caf", got)
	assert.True(t, utf8.ValidString(got))

	// A long run of multi-byte runes stays valid at any cap.
	long := strings.Repeat("画", 1000) // 3 bytes each
	for _, limit := range []int{1, 2, 2000, 2999} {
		got := TruncateString(long, limit)
		assert.True(t, utf8.ValidString(got))
		assert.LessOrEqual(t, len(got), limit)
	}
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("mira_paints"))
	assert.True(t, ValidateUsername("abc"))
	assert.False(t, ValidateUsername("ab"))
	assert.False(t, ValidateUsername("has space"))
	assert.False(t, ValidateUsername(strings.Repeat("a", 31)))
}
