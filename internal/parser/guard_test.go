package parser

import (
	"strings"
	"testing"
)

func TestValidShortName(t *testing.T) {
	tests := []struct {
		text  string
		alias string
		want  bool
	}{
		{"上海市闸北区西藏南路", "西藏", false},
		{"黄浦区南京东路", "南京", false},
		{"江苏南京", "南京", true},
		{"南京", "南京", true},
		{"3号楼南京", "南京", false},
		{"南京A座", "南京", false},
		{"中山大厦苏州", "苏州", false},
		{"苏州大道", "苏州", false},
		{"苏州工业园区", "苏州", false},
		{"苏州吴中区", "苏州", true},
		{"ＫＴＶ苏州", "苏州", false},
		{"苏州８号", "苏州", false},
		{"西藏自治区", "西藏", true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			at := strings.Index(tt.text, tt.alias)
			if got := validShortName(tt.text, at, len(tt.alias)); got != tt.want {
				t.Errorf("validShortName(%q, %q) = %v, want %v", tt.text, tt.alias, got, tt.want)
			}
		})
	}
}

func TestValidShortNameWindowIsTwoRunes(t *testing.T) {
	// 路 is three runes after the alias, outside the window.
	text := "南京中山东路"
	if !validShortName(text, 0, len("南京")) {
		t.Errorf("validShortName(%q) = false, want true", text)
	}
	// 号 is three runes before the alias.
	text = "号中山苏州"
	if !validShortName(text, strings.Index(text, "苏州"), len("苏州")) {
		t.Errorf("validShortName(%q) = false, want true", text)
	}
}
