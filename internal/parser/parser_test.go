package parser

import (
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/address-parsing/internal/region"
	"github.com/address-parsing/internal/region/regiontest"
)

func pathTexts(results []*MatchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.PathText()
	}
	return out
}

func TestParse(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	tests := []struct {
		name       string
		input      string
		wantPaths  []string
		wantKind   MatchKind
		wantWeight int
		wantFormat string
	}{
		{
			name:       "full path with street detail",
			input:      "上海市闵行区浦江镇恒南路899号",
			wantPaths:  []string{"上海市 - 上海市 - 闵行区"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "上海市 - 上海市 - 闵行区 - 浦江镇恒南路899号",
		},
		{
			name:       "street named after a region",
			input:      "上海市闸北区西藏南路",
			wantPaths:  []string{"上海市 - 上海市 - 闸北区"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "上海市 - 上海市 - 闸北区 - 西藏南路",
		},
		{
			name:       "alias inside a road name is rejected",
			input:      "黄浦区南京东路",
			wantPaths:  []string{"上海市 - 上海市 - 黄浦区"},
			wantKind:   Name,
			wantWeight: 1,
			wantFormat: "上海市 - 上海市 - 黄浦区 - 南京东路",
		},
		{
			name:       "level-1 alias only",
			input:      "江苏",
			wantPaths:  []string{"江苏省"},
			wantKind:   ShortName,
			wantWeight: 1,
			wantFormat: "江苏省 - ",
		},
		{
			name:       "single character alias with context",
			input:      "沪上",
			wantPaths:  []string{"上海市"},
			wantKind:   ShortName,
			wantWeight: 1,
			wantFormat: "上海市 - 上",
		},
		{
			// The city's path name "江苏省南京市" covers the whole text, so
			// both levels come back as PathName rather than Name, the same
			// as the scan this was ported from.
			name:       "province and city",
			input:      "江苏省南京市",
			wantPaths:  []string{"江苏省 - 南京市"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "江苏省 - 南京市 - ",
		},
		{
			name:       "quick index on a level-2 name",
			input:      "南京市鼓楼区中山路1号",
			wantPaths:  []string{"江苏省 - 南京市 - 鼓楼区"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "江苏省 - 南京市 - 鼓楼区 - 中山路1号",
		},
		{
			name:       "city and district",
			input:      "拉萨市城关区",
			wantPaths:  []string{"西藏自治区 - 拉萨市 - 城关区"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "西藏自治区 - 拉萨市 - 城关区 - ",
		},
		{
			name:       "names apart are merged by weight",
			input:      "上海市人民路闵行区",
			wantPaths:  []string{"上海市 - 上海市 - 闵行区"},
			wantKind:   Name,
			wantWeight: 2,
			wantFormat: "上海市 - 上海市 - 闵行区 - 人民路",
		},
		{
			name:       "separators block the cut",
			input:      "上海市 闵行区 浦江镇",
			wantPaths:  []string{"上海市 - 上海市 - 闵行区"},
			wantKind:   PathName,
			wantWeight: 1,
			wantFormat: "上海市 - 上海市 - 闵行区 - 上海市 闵行区 浦江镇",
		},
		{
			name:  "tie between same-named districts",
			input: "鼓楼区",
			wantPaths: []string{
				"江苏省 - 南京市 - 鼓楼区",
				"江苏省 - 徐州市 - 鼓楼区",
			},
			wantKind:   Name,
			wantWeight: 1,
			wantFormat: "江苏省 - 南京市 - 鼓楼区 - ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := p.Parse(tt.input)

			if got := pathTexts(results); !reflect.DeepEqual(got, tt.wantPaths) {
				t.Fatalf("Parse(%q) paths = %v, want %v", tt.input, got, tt.wantPaths)
			}
			for _, r := range results {
				if r.PathEnd.Kind != tt.wantKind {
					t.Errorf("Parse(%q) kind = %v, want %v", tt.input, r.PathEnd.Kind, tt.wantKind)
				}
				if r.Weight != tt.wantWeight {
					t.Errorf("Parse(%q) weight = %d, want %d", tt.input, r.Weight, tt.wantWeight)
				}
			}
			if got := Format(results[0], tt.input); got != tt.wantFormat {
				t.Errorf("Format(%q) = %q, want %q", tt.input, got, tt.wantFormat)
			}
		})
	}
}

func TestParseNoMatch(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	for _, input := range []string{"", "沪", "，。", " 沪 ", "北京市朝阳区"} {
		t.Run(input, func(t *testing.T) {
			results := p.Parse(input)
			if results == nil || len(results) != 0 {
				t.Errorf("Parse(%q) = %v, want an empty slice", input, pathTexts(results))
			}
		})
	}
}

func TestScanKeepsWeakerItems(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	items := p.Scan("江苏省南京市")
	if len(items) != 2 {
		t.Fatalf("Scan() returned %d items, want 2", len(items))
	}
	if items[0].Region.ID != "320000" || items[0].Kind != Name || items[0].Index != 0 {
		t.Errorf("items[0] = %s %v at %d, want 320000 name at 0", items[0].Region, items[0].Kind, items[0].Index)
	}
	if items[1].Region.ID != "320100" || items[1].Kind != PathName || items[1].Text != "江苏省南京市" {
		t.Errorf("items[1] = %s %v %q, want 320100 path_name 江苏省南京市", items[1].Region, items[1].Kind, items[1].Text)
	}
}

func TestScanRuneIndex(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	items := p.Scan("上海市人民路闵行区")
	if len(items) != 2 {
		t.Fatalf("Scan() returned %d items, want 2", len(items))
	}
	if items[1].Region.ID != "310112" || items[1].Index != 6 {
		t.Errorf("items[1] = %s at %d, want 310112 at rune 6", items[1].Region, items[1].Index)
	}
}

func TestPathNameDominates(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	items := p.Scan("沪闵行区")
	kinds := map[MatchKind]bool{}
	for _, it := range items {
		kinds[it.Kind] = true
	}
	if !kinds[ShortName] || !kinds[PathName] {
		t.Fatalf("expected both short_name and path_name items, got %v", kinds)
	}

	results, stats := p.ParseWithStats("沪闵行区")
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	for _, src := range results[0].SourceItems {
		if src.Kind != PathName {
			t.Errorf("source item %s has kind %v, want path_name", src.Region, src.Kind)
		}
	}
	if results[0].PathEnd.Text != "沪闵行区" {
		t.Errorf("PathEnd.Text = %q, want 沪闵行区", results[0].PathEnd.Text)
	}
	if !stats.QuickTopHit || stats.QuickChildHits != 1 {
		t.Errorf("stats = %+v, want a quick top hit and one quick child hit", stats)
	}
}

func TestParseWithStats(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	_, stats := p.ParseWithStats("上海市闵行区浦江镇恒南路899号")
	if !stats.QuickTopHit {
		t.Errorf("QuickTopHit = false, want true")
	}
	if stats.Items != 2 {
		t.Errorf("Items = %d, want 2", stats.Items)
	}
	if stats.LoopIterations == 0 || stats.IndexCalls == 0 {
		t.Errorf("stats = %+v, want work recorded", stats)
	}

	// 黄浦区 matches by name, then its Shanghai-prefixed path names are
	// skipped in runs since neither 上 nor 沪 occurs.
	_, stats = p.ParseWithStats("黄浦区南京东路")
	if stats.PathNameSkips != 6 {
		t.Errorf("PathNameSkips = %d, want 6", stats.PathNameSkips)
	}
	if stats.QuickTopHit {
		t.Errorf("QuickTopHit = true, want false")
	}
}

func TestRootPriorityDoesNotChangeResults(t *testing.T) {
	plain := New(regiontest.Tree(t), Options{})

	tree, err := region.Build(regiontest.Records(), region.BuildOptions{
		RootPriority: region.PriorityByName("陕西省", "西藏自治区", "江苏省"),
	})
	if err != nil {
		t.Fatal(err)
	}
	ordered := New(tree, Options{})

	inputs := []string{
		"上海市闵行区浦江镇恒南路899号",
		"黄浦区南京东路",
		"鼓楼区",
		"江苏",
		"拉萨市城关区",
		"上海市人民路闵行区",
	}
	for _, input := range inputs {
		a, b := pathTexts(plain.Parse(input)), pathTexts(ordered.Parse(input))
		sort.Strings(a)
		sort.Strings(b)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Parse(%q) = %v with priority, want %v", input, b, a)
		}
	}
}

func TestMaxInputLength(t *testing.T) {
	p := New(regiontest.Tree(t), Options{MaxInputLength: 3})

	got := pathTexts(p.Parse("上海市闵行区"))
	if want := []string{"上海市"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %v, want %v", got, want)
	}
}

func TestParseIsIdempotent(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	for _, input := range []string{"上海市闵行区浦江镇恒南路899号", "鼓楼区", "上海市人民路闵行区"} {
		first := p.Parse(input)
		second := p.Parse(input)
		if len(first) != len(second) {
			t.Fatalf("Parse(%q) returned %d then %d results", input, len(first), len(second))
		}
		for i := range first {
			if first[i].Region() != second[i].Region() ||
				first[i].Weight != second[i].Weight ||
				*first[i].PathEnd != *second[i].PathEnd {
				t.Errorf("Parse(%q) result %d differs between calls", input, i)
			}
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	p := New(regiontest.Tree(t), Options{})

	inputs := []string{
		"上海市闵行区浦江镇恒南路899号",
		"黄浦区南京东路",
		"鼓楼区",
		"拉萨市城关区",
		"西安市新城区",
	}
	want := make([][]string, len(inputs))
	for i, input := range inputs {
		want[i] = pathTexts(p.Parse(input))
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 50; n++ {
				i := n % len(inputs)
				if got := pathTexts(p.Parse(inputs[i])); !reflect.DeepEqual(got, want[i]) {
					t.Errorf("concurrent Parse(%q) = %v, want %v", inputs[i], got, want[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParse(b *testing.B) {
	p := New(regiontest.Tree(b), Options{})
	inputs := []string{
		"上海市闵行区浦江镇恒南路899号",
		"黄浦区南京东路",
		"江苏省南京市鼓楼区中山路1号",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.Parse(inputs[i%len(inputs)])
	}
}
