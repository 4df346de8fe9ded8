package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello", CleanText("  hello  ", 100))
	assert.Equal(t, "hello", CleanText("he\x00llo", 100))
	assert.Equal(t, "", CleanText("   ", 100))

	// Rune-safe truncation
	long := strings.Repeat("é", 20)
	assert.Equal(t, strings.Repeat("é", 5), CleanText(long, 5))

	// Zero max means unbounded
	assert.Equal(t, long, CleanText(long, 0))
}

func TestCleanText_NormalizesUnicode(t *testing.T) {
	// "é" as e + combining acute collapses to the single NFC codepoint
	decomposed := "é"
	assert.Equal(t, "é", CleanText(decomposed, 10))
}

func TestCleanList(t *testing.T) {
	items := []string{"  Go  ", "Postgres\x00", "Docker"}
	cleaned := CleanList(items, 2)

	assert.Equal(t, []string{"Go", "Postgres"}, cleaned)

	// Items past MaxListItemChars are truncated
	long := []string{strings.Repeat("a", MaxListItemChars+50)}
	cleaned = CleanList(long, 10)
	assert.Len(t, cleaned[0], MaxListItemChars)
}

func TestCleanList_EmptyInput(t *testing.T) {
	assert.Empty(t, CleanList(nil, 10))
	assert.Empty(t, CleanList([]string{}, 10))
}
