package region

import (
	"sort"
	"unicode/utf8"

	"github.com/address-parsing/internal/debug"
	"github.com/address-parsing/internal/logger"
)

// Build validates records and builds the tree. Steps run in a fixed order,
// each one relying on the previous: group by level and order the roots,
// link children, derive path names, skip tables and spells, then index the
// top two levels.
//
// Every dictionary defect is reported as a *ConfigurationError.
func Build(records []Record, opts BuildOptions) (*Tree, error) {
	defer debug.DebugTiming(opts.Debug, "region tree build")()

	t, err := groupByLevel(records, opts.MaxLevel)
	if err != nil {
		return nil, err
	}

	t.orderRoots(opts.RootPriority)

	if err := t.linkChildren(); err != nil {
		return nil, err
	}

	t.buildPathInfo()
	t.buildShortNameSkip()
	t.quick = newQuickIndex(t)

	logger.L().Debug("region tree built",
		"regions", len(t.regions),
		"levels", len(t.levels),
		"roots", len(t.roots),
		"quick_keys", len(t.quick.keys),
	)
	return t, nil
}

func groupByLevel(records []Record, wantLevels int) (*Tree, error) {
	if len(records) == 0 {
		return nil, configErrorf("", "no region records")
	}

	t := &Tree{
		regions: make([]Region, len(records)),
		byID:    make(map[string]int, len(records)),
	}

	maxLevel := 0
	for i := range records {
		rec := &records[i]
		if rec.ID == "" {
			return nil, configErrorf("", "record %d has an empty id", i)
		}
		if rec.Name == "" {
			return nil, configErrorf(rec.ID, "empty name")
		}
		if rec.Level < 1 {
			return nil, configErrorf(rec.ID, "level %d is below 1", rec.Level)
		}
		if _, dup := t.byID[rec.ID]; dup {
			return nil, configErrorf(rec.ID, "duplicate id")
		}
		for _, sn := range rec.ShortNames {
			if sn == "" {
				return nil, configErrorf(rec.ID, "empty short name")
			}
		}
		if rec.Level > maxLevel {
			maxLevel = rec.Level
		}

		t.byID[rec.ID] = i
		t.regions[i] = Region{
			Record:        cloneRecord(rec),
			tree:          t,
			index:         i,
			parent:        -1,
			indexOfParent: -1,
		}
	}

	if wantLevels > 0 && maxLevel != wantLevels {
		return nil, configErrorf("", "dictionary has %d levels, expected %d", maxLevel, wantLevels)
	}

	t.levels = make([][]int, maxLevel)
	for i := range t.regions {
		l := t.regions[i].Level - 1
		t.levels[l] = append(t.levels[l], i)
	}
	for l, members := range t.levels {
		if len(members) == 0 {
			return nil, configErrorf("", "level %d has no regions, levels must run contiguously from 1 to %d", l+1, maxLevel)
		}
	}
	return t, nil
}

func cloneRecord(rec *Record) Record {
	c := *rec
	c.ShortNames = append([]string(nil), rec.ShortNames...)
	c.ShortNameSpells = append([]string(nil), rec.ShortNameSpells...)
	return c
}

// orderRoots applies the caller's root priority once, before any positional
// data is derived from the root order.
func (t *Tree) orderRoots(priority func(*Region) int) {
	roots := t.levels[0]
	if priority != nil {
		rank := make(map[int]int, len(roots))
		for _, i := range roots {
			rank[i] = priority(&t.regions[i])
		}
		sort.SliceStable(roots, func(a, b int) bool {
			return rank[roots[a]] < rank[roots[b]]
		})
	}
	t.roots = roots
	for pos, i := range roots {
		t.regions[i].indexOfParent = pos
	}
}

// linkChildren resolves parents for level 2 and below. Level-1 parent ids
// are never read, imports carry both "" and "0" there.
func (t *Tree) linkChildren() error {
	for l := 1; l < len(t.levels); l++ {
		for _, i := range t.levels[l] {
			r := &t.regions[i]
			p, ok := t.byID[r.ParentID]
			if r.ParentID == "" || !ok {
				return configErrorf(r.ID, "parent %q not found", r.ParentID)
			}
			parent := &t.regions[p]
			if parent.Level != r.Level-1 {
				return configErrorf(r.ID, "parent %s is at level %d, expected %d", parent.ID, parent.Level, r.Level-1)
			}

			r.parent = p
			r.indexOfParent = len(parent.children)
			parent.children = append(parent.children, i)
			parent.childrenShortestNames = append(parent.childrenShortestNames, shortestAlias(r.ShortNames))
		}
	}
	return nil
}

// shortestAlias picks the alias with the fewest runes, the later one on a
// tie since aliases are stored most distinctive first.
func shortestAlias(aliases []string) string {
	best := ""
	bestLen := 0
	for _, a := range aliases {
		n := utf8.RuneCountInString(a)
		if best == "" || n <= bestLen {
			best, bestLen = a, n
		}
	}
	return best
}

func (t *Tree) buildShortNameSkip() {
	for i := range t.regions {
		r := &t.regions[i]
		if len(r.ShortNames) == 0 {
			continue
		}
		first := firstRune(r.Name)
		r.shortNameSkip = make([]bool, len(r.ShortNames))
		for k, sn := range r.ShortNames {
			r.shortNameSkip[k] = firstRune(sn) == first
		}
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
