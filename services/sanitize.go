package services

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Caps applied to caller text before it enters a prompt. Bounding input keeps
// generation cost predictable and blunts prompt-injection-scale payloads.
const (
	MaxResumeTextPrompt = 5000
	MaxDescriptionChars = 4000
	MaxRawTextChars     = 2000
	MaxListItemChars    = 500
	MaxSkillItems       = 30
	MaxProjectItems     = 20
)

// CleanText normalizes, strips control bytes and truncates a free-text field.
func CleanText(input string, max int) string {
	input = norm.NFC.String(input)
	input = strings.ReplaceAll(input, "\x00", "")
	input = strings.TrimSpace(input)

	if max > 0 {
		runes := []rune(input)
		if len(runes) > max {
			input = string(runes[:max])
		}
	}
	return input
}

// CleanList truncates each item and caps the list length.
func CleanList(items []string, maxItems int) []string {
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		cleaned = append(cleaned, CleanText(item, MaxListItemChars))
	}
	return cleaned
}
