// Package region builds the administrative region tree that the parser and
// the spell index run against.
//
// A Tree is built once from flat Records and is read-only afterwards, so a
// single Tree may be shared by any number of concurrent callers. Regions
// live in one arena slice and refer to each other by index.
package region

import (
	"errors"
	"fmt"

	"github.com/address-parsing/internal/pinyin"
)

// PathSeparator joins region names in PathText.
const PathSeparator = " - "

// Record is one flat dictionary row as loaded from an external source.
type Record struct {
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Level    int    `json:"level"`
	Name     string `json:"name"`

	// ShortNames are informal aliases, most distinctive first.
	ShortNames []string `json:"short_names,omitempty"`

	// NameSpell and ShortNameSpells hold upper-case pinyin initials,
	// positionally aligned with Name and ShortNames.
	NameSpell       string   `json:"name_spell,omitempty"`
	ShortNameSpells []string `json:"short_name_spells,omitempty"`

	AdDivCode string `json:"ad_div_code,omitempty"`
	AreaCode  string `json:"area_code,omitempty"`
	ZipCode   string `json:"zip_code,omitempty"`
}

// Region is a node of the built tree. The embedded Record is the data it was
// built from; everything else is derived during Build and never changes.
type Region struct {
	Record

	tree          *Tree
	index         int
	parent        int
	indexOfParent int
	children      []int

	childrenShortestNames []string
	pathNames             []string
	pathNameSkip          []int
	shortNameSkip         []bool
	pathSpells            []string
	pathLetters           pinyin.Letters
}

// ErrConfiguration is matched by every error Build returns for a malformed
// dictionary.
var ErrConfiguration = errors.New("invalid region dictionary")

// ConfigurationError describes a dictionary defect found during Build.
type ConfigurationError struct {
	RegionID string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	if e.RegionID == "" {
		return fmt.Sprintf("%v: %s", ErrConfiguration, e.Reason)
	}
	return fmt.Sprintf("%v: region %s: %s", ErrConfiguration, e.RegionID, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func configErrorf(id, format string, args ...interface{}) error {
	return &ConfigurationError{RegionID: id, Reason: fmt.Sprintf(format, args...)}
}

// BuildOptions controls tree construction.
type BuildOptions struct {
	// MaxLevel, when positive, is the level count the dictionary must have.
	MaxLevel int

	// RootPriority orders level-1 regions ascending by its result before
	// anything else is derived. Equal priorities keep input order.
	RootPriority func(*Region) int

	// Debug enables build timing output.
	Debug bool
}

// PriorityByName returns a RootPriority that scans the named level-1
// regions first, in the given order, and every other root after them.
func PriorityByName(names ...string) func(*Region) int {
	rank := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := rank[n]; !ok {
			rank[n] = i
		}
	}
	return func(r *Region) int {
		if i, ok := rank[r.Name]; ok {
			return i
		}
		return len(names)
	}
}
