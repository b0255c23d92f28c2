// Package engine ties a region tree, its parser and its spell index together
// behind one concurrency-safe value, with an optional parse cache.
package engine

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/address-parsing/internal/config"
	"github.com/address-parsing/internal/dictionary"
	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/metrics"
	"github.com/address-parsing/internal/parser"
	"github.com/address-parsing/internal/region"
	"github.com/address-parsing/internal/spell"
)

// Options configures an Engine.
type Options struct {
	Build  region.BuildOptions
	Parser parser.Options
	// CacheSize is the number of parsed addresses kept; 0 disables caching.
	CacheSize int
}

// OptionsFromConfig maps the runtime configuration onto engine options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Build: region.BuildOptions{
			MaxLevel: cfg.MaxLevel,
			Debug:    cfg.Debug,
		},
		Parser: parser.Options{
			MaxInputLength: cfg.MaxInputLength,
			Debug:          cfg.Debug,
		},
		CacheSize: cfg.CacheSize,
	}
	if len(cfg.RootPriority) > 0 {
		opts.Build.RootPriority = region.PriorityByName(cfg.RootPriority...)
	}
	return opts
}

// Engine parses and searches addresses against one dictionary.
type Engine struct {
	tree   *region.Tree
	parser *parser.Parser
	spells *spell.Index
	cache  *lru.Cache[string, []*parser.MatchResult]
}

// New builds the tree from records and prepares the parser and spell index.
func New(records []region.Record, opts Options) (*Engine, error) {
	start := time.Now()

	tree, err := region.Build(records, opts.Build)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		tree:   tree,
		parser: parser.New(tree, opts.Parser),
		spells: spell.NewIndex(tree),
	}
	if opts.CacheSize > 0 {
		e.cache, err = lru.New[string, []*parser.MatchResult](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating parse cache: %w", err)
		}
	}

	logger.L().Info("engine ready",
		"regions", tree.Len(),
		"levels", tree.MaxLevel(),
		"spell_entries", e.spells.Len(),
		"cache_size", opts.CacheSize,
		"elapsed", time.Since(start),
	)
	return e, nil
}

// Open loads the dictionary cfg describes and builds an engine over it.
func Open(ctx context.Context, cfg *config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	records, err := dictionary.Load(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	return New(records, OptionsFromConfig(cfg))
}

// Tree returns the region tree.
func (e *Engine) Tree() *region.Tree { return e.tree }

// Parser returns the underlying parser.
func (e *Engine) Parser() *parser.Parser { return e.parser }

// Parse returns the best-ranked results for address. Cached results are
// handed out as copies, so callers may change Weight or SourceItems; the
// items themselves are shared and must not be modified.
func (e *Engine) Parse(address string) []*parser.MatchResult {
	if e.cache != nil {
		if results, ok := e.cache.Get(address); ok {
			metrics.CacheHitsTotal.Inc()
			metrics.ParseTotal.WithLabelValues(metrics.Outcome(len(results))).Inc()
			return copyResults(results)
		}
		metrics.CacheMissesTotal.Inc()
	}

	start := time.Now()
	results := e.parser.Parse(address)
	metrics.ParseDuration.Observe(time.Since(start).Seconds())
	metrics.ParseTotal.WithLabelValues(metrics.Outcome(len(results))).Inc()

	if e.cache != nil {
		e.cache.Add(address, results)
		return copyResults(results)
	}
	return results
}

func copyResults(results []*parser.MatchResult) []*parser.MatchResult {
	out := make([]*parser.MatchResult, len(results))
	for i, r := range results {
		c := *r
		c.SourceItems = append([]*parser.MatchItem(nil), r.SourceItems...)
		out[i] = &c
	}
	return out
}

// Format parses address and renders its first result. ok is false when
// nothing matched, in which case address is returned unchanged.
func (e *Engine) Format(address string) (formatted string, ok bool) {
	results := e.Parse(address)
	if len(results) == 0 {
		return address, false
	}
	return parser.Format(results[0], address), true
}

// Search returns the regions whose path spell contains query's letters.
func (e *Engine) Search(query string) []*region.Region {
	metrics.SearchTotal.Inc()
	return e.spells.Search(query)
}

// Region looks a region up by ID.
func (e *Engine) Region(id string) (*region.Region, bool) {
	return e.tree.Lookup(id)
}

// CacheLen reports the number of cached addresses.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}
