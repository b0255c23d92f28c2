package region

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/address-parsing/internal/pinyin"
)

func nameVariants(r *Region) []string {
	out := make([]string, 0, 1+len(r.ShortNames))
	out = append(out, r.Name)
	return append(out, r.ShortNames...)
}

func spellVariants(r *Region) []string {
	out := make([]string, 0, 1+len(r.ShortNameSpells))
	if r.NameSpell != "" {
		out = append(out, r.NameSpell)
	}
	for _, s := range r.ShortNameSpells {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// expandPaths computes, for every region, the concatenations of one variant
// per region over every ordered, non-empty selection of its ancestors,
// ending with one of the region's own variants. Regions with children also
// contribute their bare variants, which their descendants then extend.
// Levels are processed top-down so each ancestor's expansion is ready.
func (t *Tree) expandPaths(variants func(*Region) []string) [][]string {
	exp := make([][]string, len(t.regions))
	for _, level := range t.levels {
		for _, i := range level {
			r := &t.regions[i]
			own := variants(r)

			var out []string
			if r.parent >= 0 {
				for _, a := range t.regions[r.parent].Path() {
					for _, prefix := range exp[a.index] {
						for _, v := range own {
							out = append(out, prefix+v)
						}
					}
				}
			}
			if len(r.children) > 0 {
				out = append(out, own...)
			}
			exp[i] = out
		}
	}
	return exp
}

// without returns items deduplicated in first-seen order, minus excluded.
func without(items []string, excluded []string) []string {
	seen := make(map[string]bool, len(items)+len(excluded))
	for _, e := range excluded {
		seen[e] = true
	}
	out := make([]string, 0, len(items))
	for _, s := range items {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (t *Tree) buildPathInfo() {
	names := t.expandPaths(nameVariants)
	spells := t.expandPaths(spellVariants)

	for i := range t.regions {
		r := &t.regions[i]
		if r.parent < 0 {
			continue
		}

		r.pathNames = without(names[i], nameVariants(r))
		sort.SliceStable(r.pathNames, func(a, b int) bool {
			return utf8.RuneCountInString(r.pathNames[a]) > utf8.RuneCountInString(r.pathNames[b])
		})
		r.pathNameSkip = skipTable(r.pathNames)

		r.pathSpells = pinyin.Covering(without(spells[i], spellVariants(r)))
		r.pathLetters = pinyin.LettersOf(strings.Join(r.pathSpells, ""))
	}
}

// skipTable counts, for each entry, how many entries immediately after it
// share its first character.
func skipTable(names []string) []int {
	skip := make([]int, len(names))
	for i := range names {
		first := firstRune(names[i])
		for j := i + 1; j < len(names) && firstRune(names[j]) == first; j++ {
			skip[i]++
		}
	}
	return skip
}
