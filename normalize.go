package codejudge

import "strings"

// Normalize strips formatting artifacts from a model's textual output so it
// is best-effort JSON text. It removes a surrounding Markdown code fence and
// an accidental leading "json" token; it does not validate JSON-ness.
//
// Known degenerate case: a single-line fenced block (open and close fence on
// the same line) normalizes to the empty string.
func Normalize(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		lines := strings.Split(cleaned, "\n")
		if len(lines) >= 2 {
			cleaned = strings.Join(lines[1:len(lines)-1], "\n")
		} else {
			cleaned = ""
		}
		cleaned = strings.TrimSpace(cleaned)
	}

	if strings.HasPrefix(strings.ToLower(cleaned), "json") {
		cleaned = strings.TrimSpace(cleaned[4:])
	}

	return cleaned
}
