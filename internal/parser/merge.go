package parser

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// merge turns raw items into ranked results:
//  1. only items of the strongest kind present are kept
//  2. items are folded, deepest level first, into every result whose path
//     end lies below them, or start a new result
//  3. the heaviest results survive, then ties are broken by the earliest
//     path end, the longest matched text and finally the shallowest level.
func merge(items []*MatchItem) []*MatchResult {
	if len(items) == 0 {
		return []*MatchResult{}
	}

	items = strongestKind(items)

	results := make([]*MatchResult, 0, 2)
	for _, level := range groupByLevel(items) {
		for _, item := range level {
			folded := false
			for _, res := range results {
				if !res.PathEnd.Region.PathContains(item.Region) {
					continue
				}
				for _, src := range res.SourceItems {
					if !src.Region.PathContains(item.Region) {
						panic(fmt.Sprintf("parser: %s folded into a path through %s it is not on", item.Region, src.Region))
					}
				}
				res.Weight++
				res.SourceItems = append(res.SourceItems, item)
				folded = true
			}
			if !folded {
				results = append(results, &MatchResult{
					PathEnd:     item,
					SourceItems: []*MatchItem{item},
					Weight:      1,
				})
			}
		}
	}

	results = keepMax(results, func(r *MatchResult) int { return r.Weight })
	results = keepMax(results, func(r *MatchResult) int { return -r.PathEnd.Index })
	results = keepMax(results, func(r *MatchResult) int { return utf8.RuneCountInString(r.PathEnd.Text) })
	results = keepMax(results, func(r *MatchResult) int { return -r.PathEnd.Region.Level })
	return results
}

func strongestKind(items []*MatchItem) []*MatchItem {
	best := items[0].Kind
	for _, it := range items[1:] {
		if it.Kind < best {
			best = it.Kind
		}
	}
	out := make([]*MatchItem, 0, len(items))
	for _, it := range items {
		if it.Kind == best {
			out = append(out, it)
		}
	}
	return out
}

// groupByLevel buckets items by region level, deepest level first, keeping
// discovery order inside each bucket.
func groupByLevel(items []*MatchItem) [][]*MatchItem {
	byLevel := make(map[int][]*MatchItem)
	var levels []int
	for _, it := range items {
		l := it.Region.Level
		if _, ok := byLevel[l]; !ok {
			levels = append(levels, l)
		}
		byLevel[l] = append(byLevel[l], it)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(levels)))

	out := make([][]*MatchItem, len(levels))
	for i, l := range levels {
		out[i] = byLevel[l]
	}
	return out
}

// keepMax keeps the results scoring highest under score, in order.
func keepMax(results []*MatchResult, score func(*MatchResult) int) []*MatchResult {
	if len(results) < 2 {
		return results
	}
	best := score(results[0])
	for _, r := range results[1:] {
		if s := score(r); s > best {
			best = s
		}
	}
	out := results[:0:0]
	for _, r := range results {
		if score(r) == best {
			out = append(out, r)
		}
	}
	return out
}
