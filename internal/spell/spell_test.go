package spell

import (
	"reflect"
	"testing"

	"github.com/address-parsing/internal/pinyin"
	"github.com/address-parsing/internal/region"
	"github.com/address-parsing/internal/region/regiontest"
)

func ids(regions []*region.Region) []string {
	out := []string{}
	for _, r := range regions {
		out = append(out, r.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	x := NewIndex(regiontest.Tree(t))

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"full path initials", "shsmxq", []string{"310112"}},
		{"district initials", "MX", []string{"310112"}},
		{"full-width query", "ＭＸＱ", []string{"310112"}},
		{"separators ignored", "m-x q", []string{"310112"}},
		{"same name under two cities", "glq", []string{"320106", "320302"}},
		{"city narrows the tie", "njglq", []string{"320106"}},
		{"other city", "xzglq", []string{"320302"}},
		{"letters out of order", "qxm", []string{}},
		{"repeated letter", "zzz", []string{"540102"}},
		{"single letter falls back to every leaf", "c", []string{"540102", "610102"}},
		{"no letters", "123", []string{}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(x.Search(tt.query)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchFindsEveryLeafByItsSpell(t *testing.T) {
	tree := regiontest.Tree(t)
	x := NewIndex(tree)

	for _, leaf := range tree.Leaves() {
		for _, s := range leaf.PathSpells() {
			found := false
			for _, r := range x.Search(s) {
				if r == leaf {
					found = true
				}
			}
			if !found {
				t.Errorf("Search(%q) does not return %s", s, leaf)
			}
		}
	}
}

func TestEntries(t *testing.T) {
	x := NewIndex(regiontest.Tree(t))
	entries := x.Entries()

	// 26 single-letter entries plus 325 pairs.
	if len(entries) != 26+325 {
		t.Fatalf("got %d entries, want %d", len(entries), 26+325)
	}
	for i := 1; i < len(entries); i++ {
		if len(entries[i-1].Regions) > len(entries[i].Regions) {
			t.Fatalf("entries not sorted by size at %d", i)
		}
	}

	for _, e := range entries {
		if e.Repeated != (e.Key.Count() == 1) {
			t.Errorf("entry %s: Repeated = %v", e.Key, e.Repeated)
		}
		if e.Key == pinyin.LettersOf("MX") && !reflect.DeepEqual(ids(e.Regions), []string{"310112"}) {
			t.Errorf("entry MX = %v, want [310112]", ids(e.Regions))
		}
	}
	if x.Len() != 9 {
		t.Errorf("Len() = %d, want 9", x.Len())
	}
}

func BenchmarkSearch(b *testing.B) {
	x := NewIndex(regiontest.Tree(b))
	queries := []string{"shsmxq", "glq", "c", "njglq"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Search(queries[i%len(queries)])
	}
}
