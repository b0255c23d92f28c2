package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/address-parsing/internal/region"
)

// matchContext is the state of one scan, threaded through the recursion.
type matchContext struct {
	tree     *region.Tree
	text     string
	maxLevel int

	// pathLevel is the level of the last PathName hit, 0 before any.
	// A hit at maxLevel ends the whole scan; a hit at level n ends the
	// scan of every sibling list at level n or above.
	pathLevel int

	items []*MatchItem
	stats Stats
}

// match scans the sibling list scope, trying scope[priority] first and the
// rest in order. childHint, when not negative, is the child to try first
// under the priority sibling. start is the byte offset names must occur at
// or after.
func (c *matchContext) match(scope []int, priority, childHint, start int) {
	if priority < 0 || priority >= len(scope) {
		priority = 0
	}

	for step := 0; step < len(scope); step++ {
		k := priority
		if step > 0 {
			k = step - 1
			if k >= priority {
				k = step
			}
		}

		if c.pathLevel == c.maxLevel {
			return
		}
		current := c.tree.At(scope[k])
		if c.pathLevel >= current.Level {
			return
		}
		c.stats.LoopIterations++

		// Descendants are scanned whether or not current matched: the
		// text may name a district without its city.
		cursor := 0
		if item := c.matchRegion(current, start); item != nil {
			c.items = append(c.items, item)
			cursor = item.byteIndex + len(item.Text)
		}

		if current.Level >= c.maxLevel || current.IsLeaf() {
			continue
		}

		hint := childHint
		if step > 0 || hint < 0 {
			hint = region.QuickChildIndex(c.text, cursor, current.ChildrenShortestNames())
		}
		if hint > 0 {
			c.stats.QuickChildHits++
		}
		c.match(current.ChildIndexes(), hint, -1, cursor)
	}
}

// matchRegion tries the name, then the aliases, then, once either hit, the
// path names of r.
func (c *matchContext) matchRegion(r *region.Region, start int) *MatchItem {
	rest := c.text[start:]

	kind, at, text := Name, -1, ""

	nameSeen := false
	if strings.ContainsRune(rest, firstRune(r.Name)) {
		nameSeen = true
		c.stats.IndexCalls++
		if i := strings.Index(rest, r.Name); i >= 0 {
			at, text = start+i, r.Name
		}
	}

	if at < 0 {
		skip := r.ShortNameSkip()
		for k, sn := range r.ShortNames {
			// An alias sharing the name's first character cannot occur
			// when that character does not.
			if !nameSeen && skip[k] {
				continue
			}
			if !strings.ContainsRune(rest, firstRune(sn)) {
				continue
			}
			c.stats.IndexCalls++
			i := strings.Index(rest, sn)
			if i >= 0 && validShortName(c.text, start+i, len(sn)) {
				kind, at, text = ShortName, start+i, sn
				break
			}
		}
	}

	if at < 0 {
		return nil
	}

	names, skips := r.PathNames(), r.PathNameSkip()
	for i := 0; i < len(names); i++ {
		if !strings.ContainsRune(c.text, firstRune(names[i])) {
			c.stats.PathNameSkips += skips[i]
			i += skips[i]
			continue
		}
		c.stats.IndexCalls++
		if j := strings.Index(c.text, names[i]); j >= 0 {
			kind, at, text = PathName, j, names[i]
			c.pathLevel = r.Level
			break
		}
	}

	return &MatchItem{
		Region:    r,
		Kind:      kind,
		Index:     utf8.RuneCountInString(c.text[:at]),
		Text:      text,
		byteIndex: at,
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
