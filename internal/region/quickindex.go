package region

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// quickIndex maps every level-1 and level-2 name and alias to the regions
// carrying it, shallower regions first. It only steers scan order.
type quickIndex struct {
	keys    map[string][]int
	lengths []int
}

func newQuickIndex(t *Tree) *quickIndex {
	q := &quickIndex{keys: make(map[string][]int)}
	lengthSeen := make(map[int]bool)

	for l := 0; l < len(t.levels) && l < 2; l++ {
		for _, i := range t.levels[l] {
			for _, key := range nameVariants(&t.regions[i]) {
				list := q.keys[key]
				if len(list) > 0 && list[len(list)-1] == i {
					continue
				}
				q.keys[key] = append(list, i)
				if n := utf8.RuneCountInString(key); !lengthSeen[n] {
					lengthSeen[n] = true
					q.lengths = append(q.lengths, n)
				}
			}
		}
	}
	sort.Ints(q.lengths)
	return q
}

// QuickMatchTop looks for a level-1 or level-2 name or alias starting
// exactly at byte offset in text, trying the shortest key length first. On
// a hit it returns the preferred region and the byte offset after the key.
func (t *Tree) QuickMatchTop(text string, offset int) (*Region, int, bool) {
	if offset < 0 || offset >= len(text) {
		return nil, offset, false
	}

	q := t.quick
	end := offset
	runes := 0
	for _, n := range q.lengths {
		for runes < n && end < len(text) {
			_, size := utf8.DecodeRuneInString(text[end:])
			end += size
			runes++
		}
		if runes < n {
			break
		}
		if list, ok := q.keys[text[offset:end]]; ok {
			return &t.regions[list[0]], end, true
		}
	}
	return nil, offset, false
}

// QuickCandidates returns every region indexed under key, shallowest first.
func (t *Tree) QuickCandidates(key string) []*Region {
	list := t.quick.keys[key]
	out := make([]*Region, len(list))
	for i, idx := range list {
		out[i] = &t.regions[idx]
	}
	return out
}

// QuickChildIndex guesses which child is mentioned right after byte offset
// by looking for a two or three rune alias from names inside the next
// three runes of text. It returns the position in names, or 0.
func QuickChildIndex(text string, offset int, names []string) int {
	if len(names) == 0 || offset < 0 || offset >= len(text) {
		return 0
	}

	end := offset
	for n := 0; n < 3 && end < len(text); n++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	window := text[offset:end]
	if utf8.RuneCountInString(window) < 2 {
		return 0
	}

	for i, name := range names {
		switch utf8.RuneCountInString(name) {
		case 2:
			if strings.Contains(window, name) {
				return i
			}
		case 3:
			if strings.HasPrefix(window, name) {
				return i
			}
		}
	}
	return 0
}
