// Package service contains the application's business logic, sitting between
// HTTP handlers and repositories.
package service

import (
	"strings"
)

// SanitizePrompt normalizes raw prompt text: leading/trailing whitespace is
// removed and interior runs of whitespace collapse to a single space.
// Pure and idempotent.
func SanitizePrompt(prompt string) string {
	return strings.Join(strings.Fields(prompt), " ")
}
