package region

// Tree is a built region hierarchy plus its top-level quick index.
type Tree struct {
	regions []Region
	roots   []int
	levels  [][]int
	byID    map[string]int
	quick   *quickIndex
}

// Len returns the number of regions.
func (t *Tree) Len() int { return len(t.regions) }

// At returns the region at arena index i.
func (t *Tree) At(i int) *Region { return &t.regions[i] }

// MaxLevel is the deepest level in the tree.
func (t *Tree) MaxLevel() int { return len(t.levels) }

// RootIndexes returns the level-1 arena indexes in scan order.
// The slice is shared and must not be modified.
func (t *Tree) RootIndexes() []int { return t.roots }

// Roots returns the level-1 regions in scan order.
func (t *Tree) Roots() []*Region { return t.Level(1) }

// Level returns the regions of level n, or nil when there is none.
func (t *Tree) Level(n int) []*Region {
	if n < 1 || n > len(t.levels) {
		return nil
	}
	out := make([]*Region, len(t.levels[n-1]))
	for i, idx := range t.levels[n-1] {
		out[i] = &t.regions[idx]
	}
	return out
}

// Leaves returns the regions of the deepest level.
func (t *Tree) Leaves() []*Region { return t.Level(len(t.levels)) }

// Lookup finds a region by ID.
func (t *Tree) Lookup(id string) (*Region, bool) {
	i, ok := t.byID[id]
	if !ok {
		return nil, false
	}
	return &t.regions[i], true
}
