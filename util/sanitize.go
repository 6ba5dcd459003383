package util

import "strings"

const maxFileNameLength = 50

// SanitizeFileName reduces a caller-influenced title to a safe
// attachment filename: alphanumerics, spaces, hyphens and
// underscores only, trailing whitespace stripped, at most 50
// characters. The extension is appended by the caller.
func SanitizeFileName(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	name := b.String()
	if len(name) > maxFileNameLength {
		name = name[:maxFileNameLength]
	}
	name = strings.TrimRight(name, " ")
	if name == "" {
		name = "download"
	}
	return name
}
