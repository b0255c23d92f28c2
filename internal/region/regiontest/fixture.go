// Package regiontest provides a small, hand-checked region dictionary for
// tests in packages that sit on top of the region tree.
package regiontest

import (
	"testing"

	"github.com/address-parsing/internal/region"
)

func rec(id, parent string, level int, name, spell string, shorts ...string) region.Record {
	r := region.Record{ID: id, ParentID: parent, Level: level, Name: name, NameSpell: spell}
	for i := 0; i+1 < len(shorts); i += 2 {
		r.ShortNames = append(r.ShortNames, shorts[i])
		r.ShortNameSpells = append(r.ShortNameSpells, shorts[i+1])
	}
	return r
}

// Records returns a three-level dictionary covering Shanghai, Jiangsu,
// Tibet and Shaanxi. It holds two 鼓楼区 leaves under different cities and a
// municipality whose level-2 region repeats the level-1 name.
func Records() []region.Record {
	return []region.Record{
		rec("310000", "", 1, "上海市", "SHS", "上海", "SH", "沪", "H"),
		rec("320000", "", 1, "江苏省", "JSS", "江苏", "JS", "苏", "S"),
		rec("540000", "", 1, "西藏自治区", "XZZZQ", "西藏", "XZ", "藏", "Z"),
		rec("610000", "", 1, "陕西省", "SXS", "陕西", "SX", "陕", "S"),

		rec("310100", "310000", 2, "上海市", "SHS"),
		rec("320100", "320000", 2, "南京市", "NJS", "南京", "NJ"),
		rec("320300", "320000", 2, "徐州市", "XZS", "徐州", "XZ"),
		rec("320500", "320000", 2, "苏州市", "SZS", "苏州", "SZ"),
		rec("540100", "540000", 2, "拉萨市", "LSS", "拉萨", "LS"),
		rec("610100", "610000", 2, "西安市", "XAS", "西安", "XA"),

		rec("310101", "310100", 3, "黄浦区", "HPQ", "黄浦", "HP"),
		rec("310108", "310100", 3, "闸北区", "ZBQ", "闸北", "ZB"),
		rec("310112", "310100", 3, "闵行区", "MXQ", "闵行", "MX"),
		rec("320102", "320100", 3, "玄武区", "XWQ", "玄武", "XW"),
		rec("320106", "320100", 3, "鼓楼区", "GLQ"),
		rec("320302", "320300", 3, "鼓楼区", "GLQ"),
		rec("320506", "320500", 3, "吴中区", "WZQ", "吴中", "WZ"),
		rec("540102", "540100", 3, "城关区", "CGQ", "城关", "CG"),
		rec("610102", "610100", 3, "新城区", "XCQ", "新城", "XC"),
	}
}

// Tree builds Records with default options, failing tb on error.
func Tree(tb testing.TB) *region.Tree {
	tb.Helper()
	t, err := region.Build(Records(), region.BuildOptions{})
	if err != nil {
		tb.Fatalf("building fixture tree: %v", err)
	}
	return t
}
