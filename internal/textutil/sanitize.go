package textutil

import (
	"strings"
	"unicode"
)

// slashReplacer turns path separators into hyphens so a metadata value
// can never escape its own path segment.
var slashReplacer = strings.NewReplacer("\\", "-", "/", "-")

// SanitizePathSegment converts an arbitrary metadata string into a
// filesystem-safe single path segment. Slashes and backslashes become
// hyphens, a trailing dot and the reserved characters ? * : | < > become
// underscores, non-printable runes become underscores, and runs of the
// replacement characters collapse to one. The transform is total and
// idempotent.
func SanitizePathSegment(name string) string {
	name = slashReplacer.Replace(name)
	name = collapseRuns(name, '-')
	if strings.HasSuffix(name, ".") {
		name = name[:len(name)-1] + "_"
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '?' || r == '*' || r == ':' || r == '|' || r == '<' || r == '>':
			b.WriteByte('_')
		case !unicode.IsPrint(r):
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	return collapseRuns(b.String(), '_')
}

func collapseRuns(s string, c byte) string {
	double := string([]byte{c, c})
	single := string(c)
	for strings.Contains(s, double) {
		s = strings.ReplaceAll(s, double, single)
	}
	return s
}
