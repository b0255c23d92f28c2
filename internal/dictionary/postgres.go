package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/address-parsing/internal/region"
)

// PostgresSource reads records from a table laid out like SYS_CHINA_AREAS:
//
//	code, parent_code, level, name, short_names, spell_code,
//	short_names_spell, div_code, area_code, zip_code
//
// with the multi-valued columns "|"-separated.
type PostgresSource struct {
	DB    *sql.DB
	Table string
}

// Query returns the SELECT issued by Load.
func (s PostgresSource) Query() string {
	return fmt.Sprintf(`
		SELECT code, parent_code, level, name,
		       short_names, spell_code, short_names_spell,
		       div_code, area_code, zip_code
		FROM %s
		ORDER BY level, code`, pq.QuoteIdentifier(s.Table))
}

// Load implements Source.
func (s PostgresSource) Load(ctx context.Context) ([]region.Record, error) {
	rows, err := s.DB.QueryContext(ctx, s.Query())
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.Table, err)
	}
	defer rows.Close()

	var records []region.Record
	for rows.Next() {
		var (
			rec                                region.Record
			parent, shorts, spell, shortsSpell sql.NullString
			divCode, areaCode, zipCode         sql.NullString
		)
		if err := rows.Scan(&rec.ID, &parent, &rec.Level, &rec.Name,
			&shorts, &spell, &shortsSpell, &divCode, &areaCode, &zipCode); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.Table, err)
		}

		rec.ParentID = parent.String
		rec.ShortNames = splitList(shorts.String)
		rec.NameSpell = spell.String
		rec.ShortNameSpells = splitList(shortsSpell.String)
		rec.AdDivCode = divCode.String
		rec.AreaCode = areaCode.String
		rec.ZipCode = zipCode.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Table, err)
	}

	FillSpells(records)
	return records, nil
}
