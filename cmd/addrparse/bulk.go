package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/address-parsing/internal/batch"
	"github.com/address-parsing/internal/debug"
)

func createBulkCmd(flags *globalFlags) *cobra.Command {
	var (
		input     string
		output    string
		workers   int
		batchSize int
		skipBlank bool
	)

	cmd := &cobra.Command{
		Use:   "bulk",
		Short: "Parse a file of addresses, one per line, into CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cfg, err := loadEngine(cmd, flags)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if input != "" && input != "-" {
				f, err := os.Open(input)
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in = f
			}

			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output: %w", err)
				}
				defer f.Close()
				out = f
			}

			debug.DebugHeader(cfg.Debug)
			defer debug.DebugFooter(cfg.Debug)

			if !cmd.Flags().Changed("workers") {
				workers = cfg.BulkWorkers
			}
			sum, err := batch.Run(cmd.Context(), eng, in, out, batch.Options{
				Workers:   workers,
				BatchSize: batchSize,
				SkipBlank: skipBlank,
				Debug:     cfg.Debug,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "processed %d lines: %d matched (%d ties), %d unmatched in %v\n",
				sum.Lines, sum.Matched, sum.Ties, sum.Unmatched, sum.Elapsed)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file, - or empty for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV file, - or empty for stdout")
	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "parsing goroutines (BULK_WORKERS)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 1000, "lines per batch")
	cmd.Flags().BoolVar(&skipBlank, "skip-blank", false, "drop empty lines")
	return cmd
}
