package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/address-parsing/internal/parser"
	"github.com/address-parsing/internal/postal"
)

func createParseCmd(flags *globalFlags) *cobra.Command {
	var asJSON, items, components bool

	cmd := &cobra.Command{
		Use:   "parse [address...]",
		Short: "Parse addresses into their region path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			for _, address := range args {
				results := eng.Parse(address)
				if asJSON {
					if err := writeParseJSON(out, address, results, components); err != nil {
						return err
					}
					continue
				}
				writeParseText(out, address, results, items, components)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON lines")
	cmd.Flags().BoolVar(&items, "items", false, "list the items merged into each result")
	cmd.Flags().BoolVar(&components, "components", false, "label the street remainder with libpostal")
	return cmd
}

func writeParseText(out io.Writer, address string, results []*parser.MatchResult, items, components bool) {
	fmt.Fprintf(out, "%s\n", address)
	if len(results) == 0 {
		fmt.Fprintln(out, "  (no match)")
		return
	}
	for i, r := range results {
		fmt.Fprintf(out, "  %d. %s [%s] weight=%d kind=%s\n", i+1, r.PathText(), r.Region().ID, r.Weight, r.PathEnd.Kind)
		if items {
			for _, it := range r.SourceItems {
				fmt.Fprintf(out, "     - %s %s at %d %q\n", it.Region.ID, it.Kind, it.Index, it.Text)
			}
		}
		if components {
			rest := postal.Remainder(parser.Format(r, address), r.PathText())
			labelled, err := postal.Parse(rest)
			if err != nil {
				fmt.Fprintf(out, "     components: %v\n", err)
				continue
			}
			for _, c := range labelled {
				fmt.Fprintf(out, "     %s: %s\n", c.Label, c.Value)
			}
		}
	}
}

type parseLine struct {
	Address string       `json:"address"`
	Results []parseEntry `json:"results"`
}

type parseEntry struct {
	RegionID   string             `json:"region_id"`
	PathText   string             `json:"path_text"`
	Formatted  string             `json:"formatted"`
	Kind       parser.MatchKind   `json:"kind"`
	Weight     int                `json:"weight"`
	Components []postal.Component `json:"components,omitempty"`
}

func writeParseJSON(out io.Writer, address string, results []*parser.MatchResult, components bool) error {
	line := parseLine{Address: address, Results: []parseEntry{}}
	for _, r := range results {
		e := parseEntry{
			RegionID:  r.Region().ID,
			PathText:  r.PathText(),
			Formatted: parser.Format(r, address),
			Kind:      r.PathEnd.Kind,
			Weight:    r.Weight,
		}
		if components {
			labelled, err := postal.Parse(postal.Remainder(e.Formatted, e.PathText))
			if err != nil {
				return err
			}
			e.Components = labelled
		}
		line.Results = append(line.Results, e)
	}
	return json.NewEncoder(out).Encode(line)
}

func createFormatCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "format [address...]",
		Short: "Rewrite addresses as region path plus remainder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}
			for _, address := range args {
				formatted, _ := eng.Format(address)
				fmt.Fprintln(cmd.OutOrStdout(), formatted)
			}
			return nil
		},
	}
}
