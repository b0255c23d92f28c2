// Package dictionary loads region records from the supported sources: the
// embedded sample, JSON and CSV files and a PostgreSQL table.
package dictionary

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/address-parsing/internal/pinyin"
	"github.com/address-parsing/internal/region"
)

//go:embed data/sample_regions.json
var sampleFS embed.FS

// Source produces the flat region records a tree is built from.
type Source interface {
	Load(ctx context.Context) ([]region.Record, error)
}

// SampleSource serves the embedded sample dictionary: seven provinces with
// a handful of cities and districts each.
type SampleSource struct{}

// Load implements Source.
func (SampleSource) Load(ctx context.Context) ([]region.Record, error) {
	return Sample()
}

// Sample returns the embedded sample dictionary with spells filled in.
func Sample() ([]region.Record, error) {
	f, err := sampleFS.Open("data/sample_regions.json")
	if err != nil {
		return nil, fmt.Errorf("opening sample dictionary: %w", err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// JSONFile reads records from a JSON array file.
type JSONFile struct {
	Path string
}

// Load implements Source.
func (s JSONFile) Load(ctx context.Context) ([]region.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", s.Path, err)
	}
	return records, nil
}

// ReadJSON decodes a JSON array of records and fills missing spells.
func ReadJSON(r io.Reader) ([]region.Record, error) {
	var records []region.Record
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding region records: %w", err)
	}
	for i := range records {
		records[i].ShortNames = splitAliases(records[i].ShortNames)
	}
	FillSpells(records)
	return records, nil
}

// splitAliases trims aliases and drops empty ones.
func splitAliases(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FillSpells derives pinyin initials for every name and alias that has no
// spell, and realigns ShortNameSpells with ShortNames.
func FillSpells(records []region.Record) {
	for i := range records {
		r := &records[i]
		if r.NameSpell == "" {
			r.NameSpell = pinyin.Initials(r.Name)
		}
		r.NameSpell = strings.ToUpper(r.NameSpell)

		if len(r.ShortNames) == 0 {
			r.ShortNameSpells = nil
			continue
		}
		spells := make([]string, len(r.ShortNames))
		for k, sn := range r.ShortNames {
			if k < len(r.ShortNameSpells) && r.ShortNameSpells[k] != "" {
				spells[k] = strings.ToUpper(strings.TrimSpace(r.ShortNameSpells[k]))
			} else {
				spells[k] = pinyin.Initials(sn)
			}
		}
		r.ShortNameSpells = spells
	}
}
