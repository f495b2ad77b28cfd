package domain

import (
	"strings"
)

// NormalizeLabel prepares a free-form label (subject, xp source) for
// comparison: surrounding whitespace is trimmed, the text is lowercased and
// runs of spaces collapse into one.
func NormalizeLabel(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeSubject maps raw input to a Subject. The result may still be
// invalid; callers check IsValid.
func NormalizeSubject(raw string) Subject {
	return Subject(NormalizeLabel(raw))
}
