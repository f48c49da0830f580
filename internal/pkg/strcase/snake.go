package strcase

import (
	"strings"
	"unicode"
)

// ToLowerSnake lowercases s and inserts underscores at word boundaries.
// Initialisms stay together: "PublicID" becomes "public_id" and
// "HTTPServer" becomes "http_server".
func ToLowerSnake(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && snakeBoundary(runes, i) {
			b.WriteRune('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// snakeBoundary reports whether a new word starts at runes[i]. The caller
// guarantees i > 0 and that runes[i] is upper case.
func snakeBoundary(runes []rune, i int) bool {
	prev := runes[i-1]

	// end of a lower/digit run: userID -> user | ID
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// end of an initialism followed by a word: HTTPServer -> HTTP | Server
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}

	return false
}
