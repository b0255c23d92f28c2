package parser

import (
	"strings"
	"unicode/utf8"
)

// guardWindow is how many runes on each side of an alias hit are checked.
const guardWindow = 2

// invalidAdjacent are words that, next to an alias, show the alias is part
// of a street, building or unit name rather than a region: "西藏南路",
// "南京东路", "中山大厦".
var invalidAdjacent = []string{
	"街", "路", "村", "弄", "幢", "号", "道",
	"大厦", "工业", "产业", "广场", "科技", "公寓", "中心", "小区", "花园", "大道", "农场",
}

func isDigitOrLatin(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= '０' && r <= '９':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 'ａ' && r <= 'ｚ', r >= 'Ａ' && r <= 'Ｚ':
		return true
	}
	return false
}

func deniedWindow(w string) bool {
	for _, r := range w {
		if isDigitOrLatin(r) {
			return true
		}
	}
	for _, word := range invalidAdjacent {
		if strings.Contains(w, word) {
			return true
		}
	}
	return false
}

// validShortName reports whether an alias hit at byte offset at with byte
// length n is free of street and unit words within guardWindow runes on
// either side.
func validShortName(text string, at, n int) bool {
	if at < 0 || at >= len(text) {
		return true
	}

	end := at + n
	after := end
	for i := 0; i < guardWindow && after < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[after:])
		after += size
	}
	if deniedWindow(text[end:after]) {
		return false
	}

	before := at
	for i := 0; i < guardWindow && before > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:before])
		before -= size
	}
	return !deniedWindow(text[before:at])
}
