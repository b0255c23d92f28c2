package region_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/address-parsing/internal/region"
	"github.com/address-parsing/internal/region/regiontest"
)

func mustLookup(t *testing.T, tree *region.Tree, id string) *region.Region {
	t.Helper()
	r, ok := tree.Lookup(id)
	if !ok {
		t.Fatalf("region %s not found", id)
	}
	return r
}

func TestPathNamesExcludeOwnNames(t *testing.T) {
	tree := regiontest.Tree(t)

	for i := 0; i < tree.Len(); i++ {
		r := tree.At(i)
		own := append([]string{r.Name}, r.ShortNames...)
		for _, pn := range r.PathNames() {
			for _, o := range own {
				if pn == o {
					t.Errorf("%s: path names contain own name %q", r, o)
				}
			}
		}
		if r.Parent() == nil && len(r.PathNames()) != 0 {
			t.Errorf("%s: root has path names %v", r, r.PathNames())
		}
	}
}

func TestPathNames(t *testing.T) {
	tree := regiontest.Tree(t)
	r := mustLookup(t, tree, "310112")

	want := []string{
		"上海市上海市闵行区",
		"上海市上海市闵行", "上海上海市闵行区",
		"上海上海市闵行", "沪上海市闵行区",
		"上海市闵行区", "沪上海市闵行",
		"上海市闵行", "上海闵行区",
		"上海闵行", "沪闵行区",
		"沪闵行",
	}
	if got := r.PathNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PathNames() = %v, want %v", got, want)
	}

	wantSkip := []int{3, 2, 1, 0, 0, 0, 0, 2, 1, 0, 1, 0}
	if got := r.PathNameSkip(); !reflect.DeepEqual(got, wantSkip) {
		t.Errorf("PathNameSkip() = %v, want %v", got, wantSkip)
	}
}

func TestPathNamesLevelTwo(t *testing.T) {
	tree := regiontest.Tree(t)
	r := mustLookup(t, tree, "320100")

	want := []string{"江苏省南京市", "江苏省南京", "江苏南京市", "江苏南京", "苏南京市", "苏南京"}
	if got := r.PathNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("PathNames() = %v, want %v", got, want)
	}
}

func TestPathSpells(t *testing.T) {
	tree := regiontest.Tree(t)
	r := mustLookup(t, tree, "310112")

	if got, want := r.PathSpells(), []string{"SHSSHSMXQ"}; !reflect.DeepEqual(got, want) {
		t.Errorf("PathSpells() = %v, want %v", got, want)
	}
	if got := r.PathLetters().String(); got != "HMQSX" {
		t.Errorf("PathLetters() = %q, want %q", got, "HMQSX")
	}
}

func TestShortNameSkip(t *testing.T) {
	tree := regiontest.Tree(t)

	tests := []struct {
		id   string
		want []bool
	}{
		{"310000", []bool{true, false}},
		{"540000", []bool{true, false}},
		{"320100", []bool{true}},
		{"310100", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := mustLookup(t, tree, tt.id).ShortNameSkip(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ShortNameSkip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChildrenShortestNamesAligned(t *testing.T) {
	tree := regiontest.Tree(t)

	tests := []struct {
		id   string
		want []string
	}{
		{"310100", []string{"黄浦", "闸北", "闵行"}},
		{"320100", []string{"玄武", ""}},
		{"320000", []string{"南京", "徐州", "苏州"}},
		{"310112", nil},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r := mustLookup(t, tree, tt.id)
			if got := r.ChildrenShortestNames(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChildrenShortestNames() = %v, want %v", got, tt.want)
			}
			if len(r.ChildIndexes()) != len(r.ChildrenShortestNames()) {
				t.Errorf("children and shortest names differ in length")
			}
			for pos, c := range r.Children() {
				if c.IndexOfParent() != pos || c.Parent() != r {
					t.Errorf("child %s: IndexOfParent() = %d, want %d", c, c.IndexOfParent(), pos)
				}
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	tree := regiontest.Tree(t)
	leaf := mustLookup(t, tree, "310112")
	city := mustLookup(t, tree, "310100")
	other := mustLookup(t, tree, "320106")

	if got := leaf.PathText(); got != "上海市 - 上海市 - 闵行区" {
		t.Errorf("PathText() = %q", got)
	}
	if got := leaf.TopParent().ID; got != "310000" {
		t.Errorf("TopParent() = %s, want 310000", got)
	}
	if !leaf.PathContains(city) || !leaf.PathContains(leaf) {
		t.Errorf("expected %s to contain %s and itself", leaf, city)
	}
	if city.PathContains(leaf) || leaf.PathContains(other) {
		t.Errorf("unexpected path containment")
	}
	if len(leaf.Path()) != leaf.Level {
		t.Errorf("Path() has %d entries, want %d", len(leaf.Path()), leaf.Level)
	}
	if tree.MaxLevel() != 3 || len(tree.Leaves()) != 9 {
		t.Errorf("MaxLevel() = %d, leaves = %d", tree.MaxLevel(), len(tree.Leaves()))
	}
}

func TestRootPriority(t *testing.T) {
	tree, err := region.Build(regiontest.Records(), region.BuildOptions{
		RootPriority: region.PriorityByName("陕西省", "西藏自治区"),
	})
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}

	var names []string
	for pos, r := range tree.Roots() {
		names = append(names, r.Name)
		if r.IndexOfParent() != pos {
			t.Errorf("%s: IndexOfParent() = %d, want %d", r, r.IndexOfParent(), pos)
		}
	}
	want := []string{"陕西省", "西藏自治区", "上海市", "江苏省"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Roots() = %v, want %v", names, want)
	}
}

func TestBuildErrors(t *testing.T) {
	base := regiontest.Records()

	tests := []struct {
		name    string
		records func() []region.Record
		opts    region.BuildOptions
		reason  string
	}{
		{
			name:    "empty",
			records: func() []region.Record { return nil },
			reason:  "no region records",
		},
		{
			name: "level gap",
			records: func() []region.Record {
				return []region.Record{
					{ID: "1", Level: 1, Name: "上海市"},
					{ID: "3", ParentID: "1", Level: 3, Name: "闵行区"},
				}
			},
			reason: "level 2 has no regions",
		},
		{
			name: "unknown parent",
			records: func() []region.Record {
				r := append([]region.Record(nil), base...)
				r[len(r)-1].ParentID = "999999"
				return r
			},
			reason: `parent "999999" not found`,
		},
		{
			name: "parent at wrong level",
			records: func() []region.Record {
				r := append([]region.Record(nil), base...)
				r[len(r)-1].ParentID = "610000"
				return r
			},
			reason: "expected 2",
		},
		{
			name: "duplicate id",
			records: func() []region.Record {
				return append(append([]region.Record(nil), base...), base[0])
			},
			reason: "duplicate id",
		},
		{
			name:    "level count mismatch",
			records: regiontest.Records,
			opts:    region.BuildOptions{MaxLevel: 4},
			reason:  "expected 4",
		},
		{
			name: "empty short name",
			records: func() []region.Record {
				return []region.Record{{ID: "1", Level: 1, Name: "上海市", ShortNames: []string{""}}}
			},
			reason: "empty short name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := region.Build(tt.records(), tt.opts)
			if err == nil {
				t.Fatal("Build() = nil, want error")
			}
			if !errors.Is(err, region.ErrConfiguration) {
				t.Errorf("errors.Is(%v, ErrConfiguration) = false", err)
			}
			var cfgErr *region.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %T is not a *ConfigurationError", err)
			}
			if !strings.Contains(err.Error(), tt.reason) {
				t.Errorf("error %q does not mention %q", err, tt.reason)
			}
		})
	}
}

func TestBuildDoesNotAliasRecords(t *testing.T) {
	records := regiontest.Records()
	tree, err := region.Build(records, region.BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	records[0].ShortNames[0] = "changed"
	if got := mustLookup(t, tree, "310000").ShortNames[0]; got != "上海" {
		t.Errorf("ShortNames[0] = %q after caller mutation, want 上海", got)
	}
}

func BenchmarkBuild(b *testing.B) {
	records := regiontest.Records()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := region.Build(records, region.BuildOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
