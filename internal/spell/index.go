// Package spell searches the deepest regions by pinyin initials, so that
// "shsmx" or "MXQ" finds 闵行区 under 上海市.
//
// The index keys are letter pairs. A query first picks the most selective
// entry whose letters it contains, then runs the exact check only over that
// entry's regions.
package spell

import (
	"sort"

	"github.com/address-parsing/internal/pinyin"
	"github.com/address-parsing/internal/region"
)

// Entry maps a letter pair to the regions whose path letters hold both.
// A Repeated entry has a single letter and holds the regions with a path
// spell containing that letter at least twice.
type Entry struct {
	Key      pinyin.Letters
	Repeated bool
	Regions  []*region.Region
}

// Index is built once over a tree's deepest level and is read-only after.
type Index struct {
	entries []Entry
	leaves  []*region.Region
}

// NewIndex builds the pair index over tree's deepest level.
func NewIndex(tree *region.Tree) *Index {
	leaves := tree.Leaves()
	x := &Index{leaves: leaves}

	seen := make(map[entryKey]bool)
	for a := byte('A'); a <= 'Z'; a++ {
		for b := a; b <= 'Z'; b++ {
			k := entryKey{mask: pinyin.Letter(a) | pinyin.Letter(b), repeated: a == b}
			if seen[k] {
				continue
			}
			seen[k] = true

			var regions []*region.Region
			for _, r := range leaves {
				if k.repeated && hasRepeated(r, a) || !k.repeated && r.PathLetters().Contains(k.mask) {
					regions = append(regions, r)
				}
			}
			x.entries = append(x.entries, Entry{Key: k.mask, Repeated: k.repeated, Regions: regions})
		}
	}

	sort.SliceStable(x.entries, func(i, j int) bool {
		return len(x.entries[i].Regions) < len(x.entries[j].Regions)
	})
	return x
}

type entryKey struct {
	mask     pinyin.Letters
	repeated bool
}

func hasRepeated(r *region.Region, c byte) bool {
	for _, s := range r.PathSpells() {
		if pinyin.CountByte(s, c) >= 2 {
			return true
		}
	}
	return false
}

// Entries returns the index entries, most selective first. Shared,
// read-only.
func (x *Index) Entries() []Entry {
	return x.entries
}

// Len is the number of indexed regions.
func (x *Index) Len() int {
	return len(x.leaves)
}
