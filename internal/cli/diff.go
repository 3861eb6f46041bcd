package cli

import "strings"

// looksLikeUnifiedDiff reports whether the text reads as unified diff output
// rather than a reference.
func looksLikeUnifiedDiff(text string) bool {
	t := strings.TrimSpace(text)
	return strings.Contains(t, "diff --git ") ||
		(strings.Contains(t, "\n--- a/") && strings.Contains(t, "\n+++ b/")) ||
		strings.HasPrefix(t, "--- a/")
}
