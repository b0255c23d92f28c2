package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/address-parsing/internal/debug"
)

// DefaultMaxInputLength bounds how many runes of an address are considered.
const DefaultMaxInputLength = 512

// splitterChars are removed before matching so that path names such as
// "上海市闵行区" can match "上海市 闵行区" or "上海市-闵行区".
var splitterChars = map[rune]bool{}

func init() {
	for _, r := range "~!@#$%^&()-+_=:;'\"?|\\{}[]<>,. " +
		"！￥…（）—【】、：；“”‘’《》？，　" {
		splitterChars[r] = true
	}
}

// IsSplitter reports whether r is stripped by CleanAddress.
func IsSplitter(r rune) bool {
	return splitterChars[r]
}

// CleanAddress strips separator characters from raw after truncating it to
// maxRunes runes. A maxRunes of zero or less disables truncation.
func CleanAddress(raw string, maxRunes int) string {
	return CleanAddressDebug(false, raw, maxRunes)
}

// CleanAddressDebug is CleanAddress with optional debug output
func CleanAddressDebug(localDebug bool, raw string, maxRunes int) string {
	if raw == "" {
		return ""
	}

	s := Truncate(raw, maxRunes)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if splitterChars[r] || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}

	cleaned := b.String()
	debug.DebugOutput(localDebug, "Cleaned %q -> %q", raw, cleaned)
	return cleaned
}

// Truncate returns at most maxRunes runes of s.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	n := 0
	for i := range s {
		if n == maxRunes {
			return s[:i]
		}
		n++
	}
	return s
}

// SpellQuery folds a pinyin-initials query to upper-case ASCII letters.
// Full-width letters are narrowed first; everything else is dropped.
func SpellQuery(q string) string {
	q = width.Narrow.String(q)

	var b strings.Builder
	for i := 0; i < len(q); i++ {
		c := q[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}
