// Package batch runs the parser over many addresses in parallel and writes
// one CSV row per input line, in input order.
package batch

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/address-parsing/internal/logger"
	"github.com/address-parsing/internal/metrics"
	"github.com/address-parsing/internal/parser"
)

// Parser is the part of the engine a batch run needs.
type Parser interface {
	Parse(address string) []*parser.MatchResult
}

// Header is the first row written by Run.
var Header = []string{"line", "input", "region_id", "path", "formatted", "kind", "weight", "candidates"}

// Options controls a batch run.
type Options struct {
	// Workers is the number of parsing goroutines; values below 1 mean 1.
	Workers int
	// BatchSize is the number of lines read before they are handed to the
	// workers; values below 1 select 1000.
	BatchSize int
	// SkipBlank drops empty lines instead of writing unmatched rows.
	SkipBlank bool
	// Debug logs per-batch timings.
	Debug bool
}

// Summary reports what a run did.
type Summary struct {
	Lines     int
	Matched   int
	Unmatched int
	Ties      int
	Elapsed   time.Duration
}

type job struct {
	line  int
	input string
}

type row struct {
	job
	results []*parser.MatchResult
}

// Run reads addresses from r, one per line, and writes CSV rows to w. It
// stops early when ctx is cancelled, after the rows already parsed have been
// written.
func Run(ctx context.Context, p Parser, r io.Reader, w io.Writer, opts Options) (Summary, error) {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = 1000
	}

	start := time.Now()
	var sum Summary

	out := csv.NewWriter(w)
	if err := out.Write(Header); err != nil {
		return sum, fmt.Errorf("writing header: %w", err)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	batchNo := 0
	lineNo := 0
	pending := make([]job, 0, opts.BatchSize)

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		batchNo++
		batchStart := time.Now()

		rows := parseBatch(ctx, p, pending, opts.Workers)
		for _, rw := range rows {
			if err := out.Write(rw.record()); err != nil {
				return fmt.Errorf("writing line %d: %w", rw.line, err)
			}
			sum.add(len(rw.results))
		}
		out.Flush()
		metrics.BulkLinesTotal.Add(float64(len(rows)))

		if opts.Debug {
			logger.L().Debug("batch done", "batch", batchNo, "lines", len(rows), "elapsed", time.Since(batchStart))
		}
		pending = pending[:0]
		if err := out.Error(); err != nil {
			return err
		}
		return ctx.Err()
	}

	for scanner.Scan() {
		lineNo++
		text := strings.TrimRight(scanner.Text(), "\r")
		if opts.SkipBlank && strings.TrimSpace(text) == "" {
			continue
		}
		pending = append(pending, job{line: lineNo, input: text})
		if len(pending) == opts.BatchSize {
			if err := flush(); err != nil {
				sum.Elapsed = time.Since(start)
				return sum, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		sum.Elapsed = time.Since(start)
		return sum, fmt.Errorf("reading input: %w", err)
	}
	err := flush()
	sum.Elapsed = time.Since(start)

	logger.L().Info("bulk run complete",
		"lines", sum.Lines,
		"matched", sum.Matched,
		"unmatched", sum.Unmatched,
		"ties", sum.Ties,
		"elapsed", sum.Elapsed,
	)
	return sum, err
}

// parseBatch parses jobs with up to workers goroutines. Rows come back in
// job order; jobs not reached before ctx is cancelled are left out.
func parseBatch(ctx context.Context, p Parser, jobs []job, workers int) []row {
	rows := make([]row, len(jobs))
	done := make([]bool, len(jobs))

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				rows[idx] = row{job: jobs[idx], results: p.Parse(jobs[idx].input)}
				done[idx] = true
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	out := rows[:0]
	for i, rw := range rows {
		if done[i] {
			out = append(out, rw)
		}
	}
	return out
}

func (s *Summary) add(results int) {
	s.Lines++
	switch {
	case results == 0:
		s.Unmatched++
	case results > 1:
		s.Ties++
		s.Matched++
	default:
		s.Matched++
	}
}

func (rw row) record() []string {
	rec := []string{strconv.Itoa(rw.line), rw.input, "", "", "", "", "", strconv.Itoa(len(rw.results))}
	if len(rw.results) == 0 {
		return rec
	}
	best := rw.results[0]
	rec[2] = best.Region().ID
	rec[3] = best.PathText()
	rec[4] = parser.Format(best, rw.input)
	rec[5] = best.PathEnd.Kind.String()
	rec[6] = strconv.Itoa(best.Weight)
	return rec
}
