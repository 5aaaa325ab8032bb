// Package cli drives the textfile engine over a batch of files: read,
// transform, atomically replace, report. Files are processed one at a time;
// the engine's single-file contract keeps the loop free of coordination.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/hakan-ronngren/textfile/internal/cli/config"
	"github.com/hakan-ronngren/textfile/internal/cli/runner"
	"github.com/hakan-ronngren/textfile/pkg/textfile"
)

// Run executes the batch described by cfg and prints the run summary to
// out. A file failure is recorded and the run continues; Run returns an
// error only when at least one file failed, the context was cancelled, or
// the report could not be written.
func Run(ctx context.Context, cfg config.RunConfig, logger *slog.Logger, out io.Writer) error {
	hooks := &loggingHooks{logger: logger.With(slog.String("component", "cli"))}
	report := textfile.Report{Summary: textfile.ReportSummary{CheckMode: cfg.Check}}
	start := time.Now()

	for _, path := range cfg.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		hooks.OnFileStart(path)
		res := processFile(path, cfg)
		hooks.OnFileDone(res)
		report.Add(res)
	}
	report.Summary.DurationSeconds = time.Since(start).Seconds()

	if err := printReport(out, report, cfg.OutputFormat); err != nil {
		return err
	}
	if n := report.Summary.Failed; n > 0 {
		return fmt.Errorf("%d file(s) failed", n)
	}
	return nil
}

func processFile(path string, cfg config.RunConfig) textfile.FileResult {
	data, err := runner.ReadFile(path)
	if err != nil {
		return textfile.FileResult{Path: path, Status: textfile.StatusFailed, Error: err.Error()}
	}

	result, err := textfile.Transform(data, cfg.Options)
	if err != nil {
		return textfile.FileResult{Path: path, Status: textfile.StatusFailed, Error: err.Error()}
	}
	if !result.Changed {
		return textfile.FileResult{Path: path, Status: textfile.StatusUnchanged}
	}

	if !cfg.Check {
		if err := runner.ReplaceFile(path, result.Output); err != nil {
			return textfile.FileResult{Path: path, Status: textfile.StatusFailed, Error: err.Error()}
		}
	}
	return textfile.FileResult{Path: path, Status: textfile.StatusChanged}
}

func printReport(out io.Writer, report textfile.Report, format config.OutputFormat) error {
	if format == config.OutputFormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	for _, f := range report.Files {
		line := fmt.Sprintf("%-9s %s", f.Status, f.Path)
		if f.Error != "" {
			line += ": " + f.Error
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	s := report.Summary
	verb := "changed"
	if s.CheckMode {
		verb = "would change"
	}
	_, err := fmt.Fprintf(out, "%d file(s): %d %s, %d unchanged, %d failed (%.3fs)\n",
		s.Total, s.Changed, verb, s.Unchanged, s.Failed, s.DurationSeconds)
	return err
}

// loggingHooks reports per-file progress through the process logger.
type loggingHooks struct {
	logger *slog.Logger
}

var _ textfile.Hooks = (*loggingHooks)(nil)

func (h *loggingHooks) OnFileStart(path string) {
	h.logger.Debug("processing file", slog.String("path", path))
}

func (h *loggingHooks) OnFileDone(res textfile.FileResult) {
	if res.Status == textfile.StatusFailed {
		h.logger.Error("file failed", slog.String("path", res.Path), slog.String("error", res.Error))
		return
	}
	h.logger.Debug("file done",
		slog.String("path", res.Path),
		slog.String("status", string(res.Status)))
}
