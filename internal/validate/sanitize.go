package validate

import "strings"

// Sanitize trims surrounding whitespace and removes markup tags from a raw
// form value. It does NOT HTML-escape: escaping happens exactly once, at the
// point the value is interpolated into rendered output. Sanitize is idempotent;
// applying it to already-sanitized input returns the input unchanged.
func Sanitize(s string) string {
	return strings.TrimSpace(stripTags(s))
}

// stripTags removes anything between matched angle brackets. An unmatched
// "<" with no closing ">" is dropped along with the rest of the string,
// mirroring how strip-tags style sanitizers treat truncated markup.
func stripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		if inTag {
			if r == '>' {
				inTag = false
			}
			continue
		}
		if r == '<' {
			inTag = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
