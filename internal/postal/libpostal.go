//go:build libpostal

package postal

import (
	"strings"

	gopostal "github.com/openvenues/gopostal/parser"
)

// Available reports whether Parse is backed by libpostal.
func Available() bool { return true }

// Parse labels text with libpostal's address parser.
func Parse(text string) ([]Component, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parsed := gopostal.ParseAddressOptions(text, gopostal.ParserOptions{Country: "cn", Language: "zh"})
	out := make([]Component, 0, len(parsed))
	for _, c := range parsed {
		out = append(out, Component{Label: c.Label, Value: c.Value})
	}
	return out, nil
}
