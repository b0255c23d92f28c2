package spell

import (
	"github.com/address-parsing/internal/normalize"
	"github.com/address-parsing/internal/pinyin"
	"github.com/address-parsing/internal/region"
)

// Search returns every indexed region with a path spell containing the
// query's letters in order. Case, width and non-letters in query are
// ignored; a query without letters finds nothing.
func (x *Index) Search(query string) []*region.Region {
	q := normalize.SpellQuery(query)
	if q == "" {
		return []*region.Region{}
	}
	mask := pinyin.LettersOf(q)

	out := []*region.Region{}
	for _, r := range x.candidates(q, mask) {
		if !r.PathLetters().Contains(mask) {
			continue
		}
		for _, s := range r.PathSpells() {
			if pinyin.IsSubsequence(s, q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// candidates returns the regions of the first entry usable for q, or every
// indexed region when no entry is.
func (x *Index) candidates(q string, mask pinyin.Letters) []*region.Region {
	for _, e := range x.entries {
		if !mask.Contains(e.Key) {
			continue
		}
		if e.Repeated && pinyin.CountByte(q, firstLetter(e.Key)) < 2 {
			continue
		}
		return e.Regions
	}
	return x.leaves
}

func firstLetter(l pinyin.Letters) byte {
	for c := byte('A'); c <= 'Z'; c++ {
		if l.Has(c) {
			return c
		}
	}
	return 0
}
