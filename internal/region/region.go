package region

import (
	"strings"

	"github.com/address-parsing/internal/pinyin"
)

// Index is the region's position in its tree's arena.
func (r *Region) Index() int { return r.index }

// Parent returns the parent region, or nil at level 1.
func (r *Region) Parent() *Region {
	if r.parent < 0 {
		return nil
	}
	return &r.tree.regions[r.parent]
}

// IndexOfParent is the region's position among its parent's children, or
// among the roots at level 1.
func (r *Region) IndexOfParent() int { return r.indexOfParent }

// ChildIndexes returns the arena indexes of the children in scan order.
// The slice is shared and must not be modified.
func (r *Region) ChildIndexes() []int { return r.children }

// Children returns the child regions in scan order.
func (r *Region) Children() []*Region {
	out := make([]*Region, len(r.children))
	for i, c := range r.children {
		out[i] = &r.tree.regions[c]
	}
	return out
}

// IsLeaf reports whether the region has no children.
func (r *Region) IsLeaf() bool { return len(r.children) == 0 }

// ChildrenShortestNames holds, for each child in ChildIndexes order, the
// child's shortest alias or "" when it has none. Shared, read-only.
func (r *Region) ChildrenShortestNames() []string { return r.childrenShortestNames }

// PathNames are the ancestor-prefixed name combinations, longest first.
// Shared, read-only.
func (r *Region) PathNames() []string { return r.pathNames }

// PathNameSkip[i] counts the entries right after PathNames[i] sharing its
// first character. Shared, read-only.
func (r *Region) PathNameSkip() []int { return r.pathNameSkip }

// ShortNameSkip[i] is true when ShortNames[i] starts with the same
// character as Name. Shared, read-only.
func (r *Region) ShortNameSkip() []bool { return r.shortNameSkip }

// PathSpells is the covering set of ancestor-path pinyin initials.
func (r *Region) PathSpells() []string { return r.pathSpells }

// PathLetters is the letter set over PathSpells.
func (r *Region) PathLetters() pinyin.Letters { return r.pathLetters }

// Path returns the ancestor chain from level 1 down to r.
func (r *Region) Path() []*Region {
	path := make([]*Region, r.Level)
	for cur := r; cur != nil; cur = cur.Parent() {
		path[cur.Level-1] = cur
	}
	return path
}

// TopParent returns the level-1 ancestor, r itself at level 1.
func (r *Region) TopParent() *Region {
	cur := r
	for cur.parent >= 0 {
		cur = &r.tree.regions[cur.parent]
	}
	return cur
}

// PathContains reports whether other is r or one of r's ancestors.
func (r *Region) PathContains(other *Region) bool {
	if other == nil || other.tree != r.tree || other.Level > r.Level {
		return false
	}
	cur := r
	for cur.Level > other.Level {
		cur = cur.Parent()
	}
	return cur.index == other.index
}

// PathText renders the names along Path, e.g. "上海市 - 上海市 - 闵行区".
func (r *Region) PathText() string {
	path := r.Path()
	names := make([]string, len(path))
	for i, p := range path {
		names[i] = p.Name
	}
	return strings.Join(names, PathSeparator)
}

func (r *Region) String() string {
	return r.ID + " " + r.Name
}
