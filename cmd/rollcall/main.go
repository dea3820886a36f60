// Command rollcall turns a folder of meeting attendance exports into a
// punctuality report. It reads CSV/XLSX exports, classifies each
// participant's first join against the class start time, aggregates
// tallies across sessions, and writes the scored report as CSV, text,
// or PDF.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"rollcall/internal/config"
	"rollcall/internal/exporter"
	"rollcall/internal/infrastructure"
	"rollcall/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// The config file must be known before flag defaults can be set
	// from it, so -config is scanned ahead of the real parse.
	cfg, err := config.Load(configFileFromArgs(args))
	if err != nil {
		fmt.Fprintln(os.Stderr, "rollcall:", err)
		return 1
	}

	fs := flag.NewFlagSet("rollcall", flag.ExitOnError)
	in := fs.String("in", "", "attendance file or directory of CSV/XLSX exports (required)")
	out := fs.String("out", cfg.Report.OutputPath, "report output path")
	format := fs.String("format", cfg.Report.Format, "report format: csv, txt, or pdf")
	classStart := fs.String("class-start", cfg.Class.Start, "class start time (HH:MM)")
	classEnd := fs.String("class-end", cfg.Class.End, "class end time (HH:MM)")
	lateMinutes := fs.String("late-minutes", cfg.Class.LateMinutes, "minutes after class start before a join counts as late")
	absentMinutes := fs.String("absent-minutes", cfg.Class.AbsentMinutes, "minutes after class start before a join counts as absent")
	totalPoints := fs.String("total-points", cfg.Class.TotalPoints, "attainable attendance points")
	latePenalty := fs.String("late-penalty", cfg.Class.LatePenalty, "points deducted per late session")
	absentPenalty := fs.String("absent-penalty", cfg.Class.AbsentPenalty, "points deducted per absent session")
	fs.String("config", "", "path to YAML config file (defaults to rollcall.yml if present)")
	fs.Parse(args)

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	runID := uuid.New().String()
	ctx := infrastructure.WithRunID(context.Background(), runID)

	if *in == "" {
		fmt.Fprintln(os.Stderr, "rollcall: -in is required: pass an attendance file or a directory of exports")
		fs.Usage()
		return 2
	}

	reportFormat, err := exporter.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rollcall:", err)
		return 1
	}

	raw := config.AttendanceConfig{
		ClassStart:    *classStart,
		ClassEnd:      *classEnd,
		LateMinutes:   *lateMinutes,
		AbsentMinutes: *absentMinutes,
		TotalPoints:   *totalPoints,
		LatePenalty:   *latePenalty,
		AbsentPenalty: *absentPenalty,
	}

	generator := report.NewGenerator(logger)
	rep, err := generator.Generate(ctx, *in, raw)
	if err != nil {
		logger.ErrorContext(ctx, "attendance run failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "rollcall:", err)
		return 1
	}

	if err := exporter.Write(*out, reportFormat, rep); err != nil {
		logger.ErrorContext(ctx, "report export failed",
			slog.String("path", *out),
			slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "rollcall:", err)
		return 1
	}

	logger.InfoContext(ctx, "report written",
		slog.String("path", *out),
		slog.String("format", reportFormat.String()),
		slog.Int("students", len(rep.Students)),
		slog.Int("sessions", rep.Sessions))
	fmt.Printf("Report complete: %d students across %d sessions, written to %s\n",
		len(rep.Students), rep.Sessions, *out)
	return 0
}

// configFileFromArgs extracts the -config value without disturbing the
// main flag parse. Both "-config path" and "-config=path" forms work.
func configFileFromArgs(args []string) string {
	for i, arg := range args {
		name, value, hasValue := strings.Cut(arg, "=")
		name = strings.TrimLeft(name, "-")
		if name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
