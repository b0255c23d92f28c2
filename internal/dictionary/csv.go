package dictionary

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/address-parsing/internal/region"
)

// aliasSeparator splits multi-valued columns such as short_names.
const aliasSeparator = "|"

// csvColumns maps accepted header names to record fields. Both the snake
// case field names and the upper-case names of the classic SYS_CHINA_AREAS
// export are understood.
var csvColumns = map[string]string{
	"id":                "id",
	"code":              "id",
	"parent_id":         "parent_id",
	"parent_code":       "parent_id",
	"level":             "level",
	"name":              "name",
	"short_names":       "short_names",
	"name_spell":        "name_spell",
	"spell_code":        "name_spell",
	"short_name_spells": "short_name_spells",
	"short_names_spell": "short_name_spells",
	"ad_div_code":       "ad_div_code",
	"div_code":          "ad_div_code",
	"area_code":         "area_code",
	"zip_code":          "zip_code",
}

// CSVFile reads records from a CSV file with a header row.
type CSVFile struct {
	Path string
}

// Load implements Source.
func (s CSVFile) Load(ctx context.Context) ([]region.Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %s: %w", s.Path, err)
	}
	return records, nil
}

// ReadCSV parses CSV with a header naming at least id, level and name.
// Alias columns hold "|"-separated values.
func ReadCSV(r io.Reader) ([]region.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int)
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if field, ok := csvColumns[h]; ok {
			cols[field] = i
		}
	}
	for _, required := range []string{"id", "level", "name"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("header is missing the %s column", required)
		}
	}

	get := func(row []string, field string) string {
		if i, ok := cols[field]; ok && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var records []region.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		level, err := strconv.Atoi(get(row, "level"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid level %q", line, get(row, "level"))
		}

		records = append(records, region.Record{
			ID:              get(row, "id"),
			ParentID:        get(row, "parent_id"),
			Level:           level,
			Name:            get(row, "name"),
			ShortNames:      splitList(get(row, "short_names")),
			NameSpell:       get(row, "name_spell"),
			ShortNameSpells: splitList(get(row, "short_name_spells")),
			AdDivCode:       get(row, "ad_div_code"),
			AreaCode:        get(row, "area_code"),
			ZipCode:         get(row, "zip_code"),
		})
	}

	FillSpells(records)
	return records, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return splitAliases(strings.Split(s, aliasSeparator))
}
