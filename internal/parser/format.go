package parser

import (
	"sort"
	"strings"

	"github.com/address-parsing/internal/region"
)

// Format renders result as its full region path followed by what is left of
// original once every matched fragment is cut out:
//
//	"上海市闵行区浦江镇恒南路899号" -> "上海市 - 上海市 - 闵行区 - 浦江镇恒南路899号"
//
// Fragments are cut latest first at their first occurrence in original. A
// fragment that only matched after separators were stripped, such as
// "上海市闵行区" for "上海市 闵行区", is not found and stays in the
// remainder. A nil result returns original unchanged.
func Format(result *MatchResult, original string) string {
	if result == nil || result.PathEnd == nil {
		return original
	}

	items := append([]*MatchItem(nil), result.SourceItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Index > items[j].Index
	})

	remainder := original
	for _, it := range items {
		if i := strings.Index(remainder, it.Text); i >= 0 {
			remainder = remainder[:i] + remainder[i+len(it.Text):]
		}
	}
	return result.PathText() + region.PathSeparator + remainder
}
