package parser

import (
	"unicode/utf8"

	"github.com/address-parsing/internal/debug"
	"github.com/address-parsing/internal/normalize"
	"github.com/address-parsing/internal/region"
)

// Parser parses addresses against one region tree.
type Parser struct {
	tree     *region.Tree
	maxInput int
	debug    bool
}

// New returns a Parser over tree.
func New(tree *region.Tree, opts Options) *Parser {
	maxInput := opts.MaxInputLength
	if maxInput == 0 {
		maxInput = normalize.DefaultMaxInputLength
	}
	return &Parser{
		tree:     tree,
		maxInput: maxInput,
		debug:    opts.Debug,
	}
}

// Tree returns the tree the parser runs against.
func (p *Parser) Tree() *region.Tree {
	return p.tree
}

// Parse returns the best-ranked results for address. No match yields an
// empty slice; ties yield several results.
func (p *Parser) Parse(address string) []*MatchResult {
	results, _ := p.ParseWithStats(address)
	return results
}

// ParseWithStats is Parse that also reports the work performed.
func (p *Parser) ParseWithStats(address string) ([]*MatchResult, Stats) {
	items, stats := p.scan(address)
	results := merge(items)

	if p.debug {
		for _, it := range items {
			debug.DebugAttrs(true, "match item",
				"region", it.Region.ID, "name", it.Region.Name,
				"kind", it.Kind.String(), "index", it.Index, "text", it.Text)
		}
		debug.DebugAttrs(true, "parse stats",
			"address", address,
			"results", len(results),
			"index_calls", stats.IndexCalls,
			"loops", stats.LoopIterations,
			"path_name_skips", stats.PathNameSkips,
			"quick_top_hit", stats.QuickTopHit,
			"quick_child_hits", stats.QuickChildHits,
		)
	}
	return results, stats
}

// Scan returns the raw items found in address, in discovery order, before
// any merging or ranking.
func (p *Parser) Scan(address string) []*MatchItem {
	items, _ := p.scan(address)
	return items
}

func (p *Parser) scan(address string) ([]*MatchItem, Stats) {
	text := normalize.CleanAddress(address, p.maxInput)
	if utf8.RuneCountInString(text) < 2 {
		return nil, Stats{}
	}

	c := &matchContext{
		tree:     p.tree,
		text:     text,
		maxLevel: p.tree.MaxLevel(),
		items:    make([]*MatchItem, 0, 8),
	}

	rootIndex, childHint := 0, -1
	if hit, _, ok := p.tree.QuickMatchTop(text, 0); ok {
		top := hit.TopParent()
		rootIndex = top.IndexOfParent()
		if hit.Level != top.Level {
			childHint = hit.IndexOfParent()
		}
		c.stats.QuickTopHit = true
	}

	c.match(p.tree.RootIndexes(), rootIndex, childHint, 0)

	c.stats.Items = len(c.items)
	return c.items, c.stats
}
