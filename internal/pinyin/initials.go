package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

var initialsArgs = newInitialsArgs()

func newInitialsArgs() gopinyin.Args {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.FirstLetter
	// Latin letters and digits in names such as "82团" pass through as-is.
	a.Fallback = func(r rune, a gopinyin.Args) []string {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return []string{string(r)}
		}
		return nil
	}
	return a
}

// Initials returns the upper-case pinyin initials of text, one letter per
// Han character, e.g. "闵行区" -> "MXQ". Digits are dropped.
func Initials(text string) string {
	parts := gopinyin.LazyPinyin(text, initialsArgs)

	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		c := p[0]
		if c >= '0' && c <= '9' {
			continue
		}
		b.WriteByte(byte(unicode.ToUpper(rune(c))))
	}
	return b.String()
}
