// Package report drives a full attendance run: resolve configuration,
// discover session files, ingest each one, and aggregate the result.
package report

import (
	"context"
	"log/slog"
	"path/filepath"

	"rollcall/internal/attendance"
	"rollcall/internal/config"
	"rollcall/internal/files"
	"rollcall/internal/roster"
)

// Generator runs the attendance pipeline end to end for one input path.
type Generator struct {
	logger *slog.Logger
	reader *roster.Reader
}

// NewGenerator creates a generator with the given logger.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		logger: logger,
		reader: roster.NewReader(logger),
	}
}

// Generate resolves the raw attendance settings, discovers the session
// files under path, and folds them into the final report. Configuration
// is validated before any file is touched, so a bad setting never
// triggers partial I/O. A file that parses but yields no participants
// is skipped and does not count as a session.
func (g *Generator) Generate(ctx context.Context, path string, raw config.AttendanceConfig) (*attendance.Report, error) {
	values, err := config.ResolveAttendance(raw)
	if err != nil {
		return nil, err
	}

	if values.AbsentMinutes < values.LateMinutes {
		g.logger.WarnContext(ctx, "absent threshold below late threshold, no participant will classify late",
			slog.Int64("late_minutes", values.LateMinutes),
			slog.Int64("absent_minutes", values.AbsentMinutes))
	}

	sessionFiles, err := files.Discover(path)
	if err != nil {
		return nil, err
	}

	g.logger.InfoContext(ctx, "starting attendance run",
		slog.String("path", path),
		slog.Int("files", len(sessionFiles)))

	agg := attendance.NewAggregator(values, g.logger)
	for _, file := range sessionFiles {
		participants, err := g.reader.ReadSession(ctx, file)
		if err != nil {
			return nil, err
		}
		if len(participants) == 0 {
			g.logger.WarnContext(ctx, "session file yielded no participants, skipping",
				slog.String("file", filepath.Base(file)))
			continue
		}
		agg.AddSession(ctx, participants)
	}

	rep := agg.Report()
	g.logger.InfoContext(ctx, "attendance run complete",
		slog.Int("sessions", rep.Sessions),
		slog.Int("students", len(rep.Students)))
	return rep, nil
}
