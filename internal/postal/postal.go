// Package postal labels the street-level remainder of a parsed address with
// libpostal. The binding needs the libpostal C library and is compiled in
// only with the libpostal build tag; other builds report ErrUnavailable.
package postal

import (
	"errors"
	"strings"
)

// ErrUnavailable is returned by Parse in builds without libpostal.
var ErrUnavailable = errors.New("libpostal support not compiled in (build with -tags libpostal)")

// Component is one labelled span, e.g. {"road", "恒南路"}.
type Component struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ToMap indexes components by label. Repeated labels are joined with a
// space in input order.
func ToMap(components []Component) map[string]string {
	out := make(map[string]string, len(components))
	for _, c := range components {
		v := strings.TrimSpace(c.Value)
		if v == "" {
			continue
		}
		if prev, ok := out[c.Label]; ok {
			out[c.Label] = prev + " " + v
		} else {
			out[c.Label] = v
		}
	}
	return out
}

// Remainder returns the part of a formatted address after its region path,
// the text libpostal is meant to label.
func Remainder(formatted, pathText string) string {
	return strings.TrimSpace(strings.TrimPrefix(formatted, pathText+" - "))
}
