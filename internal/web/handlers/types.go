package handlers

import (
	"github.com/address-parsing/internal/parser"
	"github.com/address-parsing/internal/region"
)

// RegionSummary is a region reference inside other responses
type RegionSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// RegionDetail describes one region with its path and children
type RegionDetail struct {
	ID         string          `json:"id"`
	ParentID   string          `json:"parent_id,omitempty"`
	Level      int             `json:"level"`
	Name       string          `json:"name"`
	ShortNames []string        `json:"short_names,omitempty"`
	NameSpell  string          `json:"name_spell,omitempty"`
	AdDivCode  string          `json:"ad_div_code,omitempty"`
	AreaCode   string          `json:"area_code,omitempty"`
	ZipCode    string          `json:"zip_code,omitempty"`
	PathText   string          `json:"path_text"`
	Path       []RegionSummary `json:"path"`
	Children   []RegionSummary `json:"children,omitempty"`
}

// MatchItemJSON is one raw hit that contributed to a result
type MatchItemJSON struct {
	RegionID string           `json:"region_id"`
	Name     string           `json:"name"`
	Kind     parser.MatchKind `json:"kind"`
	Index    int              `json:"index"`
	Text     string           `json:"text"`
}

// ParseResult is one ranked candidate for an address
type ParseResult struct {
	RegionID  string           `json:"region_id"`
	PathText  string           `json:"path_text"`
	Formatted string           `json:"formatted"`
	Kind      parser.MatchKind `json:"kind"`
	Weight    int              `json:"weight"`
	Items     []MatchItemJSON  `json:"items"`
}

// ParseResponse answers a single parse
type ParseResponse struct {
	Query   string        `json:"query"`
	Matched bool          `json:"matched"`
	Results []ParseResult `json:"results"`
}

func summary(r *region.Region) RegionSummary {
	return RegionSummary{ID: r.ID, Name: r.Name, Level: r.Level}
}

func detail(r *region.Region, withChildren bool) RegionDetail {
	d := RegionDetail{
		ID:         r.ID,
		ParentID:   r.ParentID,
		Level:      r.Level,
		Name:       r.Name,
		ShortNames: r.ShortNames,
		NameSpell:  r.NameSpell,
		AdDivCode:  r.AdDivCode,
		AreaCode:   r.AreaCode,
		ZipCode:    r.ZipCode,
		PathText:   r.PathText(),
	}
	for _, p := range r.Path() {
		d.Path = append(d.Path, summary(p))
	}
	if withChildren {
		for _, c := range r.Children() {
			d.Children = append(d.Children, summary(c))
		}
	}
	return d
}

func parseResponse(query string, results []*parser.MatchResult) ParseResponse {
	resp := ParseResponse{Query: query, Matched: len(results) > 0, Results: []ParseResult{}}
	for _, res := range results {
		pr := ParseResult{
			RegionID:  res.Region().ID,
			PathText:  res.PathText(),
			Formatted: parser.Format(res, query),
			Kind:      res.PathEnd.Kind,
			Weight:    res.Weight,
		}
		for _, it := range res.SourceItems {
			pr.Items = append(pr.Items, MatchItemJSON{
				RegionID: it.Region.ID,
				Name:     it.Region.Name,
				Kind:     it.Kind,
				Index:    it.Index,
				Text:     it.Text,
			})
		}
		resp.Results = append(resp.Results, pr)
	}
	return resp
}
