package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/address-parsing/internal/region"
)

func createRegionsCmd(flags *globalFlags) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "regions [id]",
		Short: "Print the region tree, or the subtree under id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}

			roots := eng.Tree().Roots()
			if len(args) == 1 {
				r, ok := eng.Region(args[0])
				if !ok {
					return fmt.Errorf("region %s not found", args[0])
				}
				roots = []*region.Region{r}
			}

			var b strings.Builder
			for _, r := range roots {
				writeRegion(&b, r, 0, depth)
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "levels to print below each root, 0 for all")
	return cmd
}

func writeRegion(b *strings.Builder, r *region.Region, indent, depth int) {
	fmt.Fprintf(b, "%s%s %s", strings.Repeat("  ", indent), r.ID, r.Name)
	if len(r.ShortNames) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(r.ShortNames, ", "))
	}
	b.WriteByte('\n')
	if depth > 0 && indent+1 >= depth {
		return
	}
	for _, c := range r.Children() {
		writeRegion(b, c, indent+1, depth)
	}
}
