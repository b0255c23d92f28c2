// Package parser matches free-form Chinese addresses against a region tree.
//
// Parsing runs in three stages: the address is cleaned of separator
// characters, the tree is scanned recursively collecting raw MatchItems,
// and the items are merged along ancestor paths and ranked into
// MatchResults. More than one result means the address is ambiguous.
//
// A Parser holds no per-call state and is safe for concurrent use.
package parser

import (
	"fmt"

	"github.com/address-parsing/internal/region"
)

// MatchKind says how a region was found in the text. Lower values are
// stronger evidence.
type MatchKind int

const (
	// PathName is a hit on an ancestor-prefixed phrase like "上海市闵行区".
	PathName MatchKind = iota
	// Name is a hit on the canonical name.
	Name
	// ShortName is a hit on an alias that passed the suffix guard.
	ShortName
)

func (k MatchKind) String() string {
	switch k {
	case PathName:
		return "path_name"
	case Name:
		return "name"
	case ShortName:
		return "short_name"
	}
	return "unknown"
}

// MarshalText renders the kind as its String form.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the String form of a kind.
func (k *MatchKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "path_name":
		*k = PathName
	case "name":
		*k = Name
	case "short_name":
		*k = ShortName
	default:
		return fmt.Errorf("parser: unknown match kind %q", text)
	}
	return nil
}

// MatchItem is one raw hit found while scanning the tree.
type MatchItem struct {
	Region *region.Region
	Kind   MatchKind
	// Index is the rune offset of Text in the cleaned address.
	Index int
	// Text is the name, alias or path name that matched.
	Text string

	byteIndex int
}

// MatchResult is one candidate answer: the deepest item on a path plus every
// item merged into that path. Items point into the region tree and must not
// be modified.
type MatchResult struct {
	PathEnd     *MatchItem
	SourceItems []*MatchItem
	Weight      int
}

// Region is the deepest matched region.
func (r *MatchResult) Region() *region.Region {
	return r.PathEnd.Region
}

// PathText renders the full path of the deepest matched region.
func (r *MatchResult) PathText() string {
	return r.PathEnd.Region.PathText()
}

// Stats counts the work done by one parse.
type Stats struct {
	// IndexCalls is the number of substring searches issued.
	IndexCalls int
	// LoopIterations is the number of regions visited.
	LoopIterations int
	// PathNameSkips is the number of path names skipped via skip tables.
	PathNameSkips int
	// QuickTopHit is set when the top-two-level index steered the scan.
	QuickTopHit bool
	// QuickChildHits counts child scans started from a non-zero hint.
	QuickChildHits int
	// Items is the number of raw items collected before merging.
	Items int
}

// Options configures a Parser.
type Options struct {
	// MaxInputLength bounds the runes of an address considered; zero
	// selects normalize.DefaultMaxInputLength, negative disables the bound.
	MaxInputLength int

	// Debug logs each parse's items and stats.
	Debug bool
}
