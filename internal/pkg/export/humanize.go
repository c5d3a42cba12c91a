package export

import (
	"strings"
	"unicode"
)

// humanizeColumn turns a camelCase field name into a column title:
// "publicationYear" becomes "Publication Year".
func humanizeColumn(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	out := []rune(b.String())
	out[0] = unicode.ToUpper(out[0])
	return string(out)
}
