package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createSearchCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [initials]",
		Short: "Find regions by pinyin initials",
		Long: `Find regions whose path spell contains the query letters in order,
for example "mxq" or "shmx" for 上海市闵行区.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}
			found := eng.Search(args[0])
			out := cmd.OutOrStdout()
			for i, r := range found {
				if limit > 0 && i == limit {
					fmt.Fprintf(out, "... %d more\n", len(found)-limit)
					break
				}
				fmt.Fprintf(out, "%s\t%s\n", r.ID, r.PathText())
			}
			if len(found) == 0 {
				fmt.Fprintln(out, "(no match)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum results to print, 0 for all")
	return cmd
}
