package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/KaramelBytes/pollnorm-cli/internal/csvio"
	"github.com/KaramelBytes/pollnorm-cli/internal/poll"
	"github.com/google/uuid"
)

// runNormalize runs the whole batch: read, enrich, sort, aggregate,
// write, and report the global weighted average on stdout.
func runNormalize(inPath, outPath string, stdout io.Writer) error {
	logger := newLogger()
	runID := uuid.NewString()
	start := time.Now()
	logger.Debug("starting run",
		slog.String("run_id", runID),
		slog.String("input", inPath),
		slog.String("output", outPath))

	header, rows, err := csvio.ReadRecords(inPath, inputDelimiter(inPath))
	if err != nil {
		return err
	}

	fields := poll.OutputFields(header)
	enriched := poll.EnrichAll(rows, fields)
	poll.SortByDateDesc(enriched)

	avg, ok := poll.GlobalWeightedAverage(enriched)
	poll.AnnotateRolling(enriched)

	if err := csvio.WriteRecords(outPath, fields, enriched); err != nil {
		return err
	}

	logger.Debug("run complete",
		slog.String("run_id", runID),
		slog.Int("rows", len(enriched)),
		slog.Duration("elapsed", time.Since(start)))

	if ok {
		fmt.Fprintf(stdout, "Weighted Approve (by Influence): %.5f\n", avg)
	} else {
		fmt.Fprintln(stdout, "Weighted Approve (by Influence): N/A (no valid rows)")
	}
	return nil
}

// inputDelimiter resolves the input delimiter: an explicit config value
// wins, otherwise it is sniffed from the filename.
func inputDelimiter(path string) rune {
	if cfg != nil {
		switch cfg.Delimiter {
		case ",":
			return ','
		case ";":
			return ';'
		case "\t", "tab":
			return '\t'
		}
	}
	return csvio.SniffDelimiter(path)
}

// newLogger builds the diagnostics logger from config: debug level only
// when enabled, text or JSON handler, always on stderr. stdout stays
// reserved for the result line.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	format := "text"
	if cfg != nil {
		if cfg.Debug {
			level = slog.LevelDebug
		}
		format = cfg.LogFormat
	}
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
