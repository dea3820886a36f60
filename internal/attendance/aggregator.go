package attendance

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"rollcall/internal/config"
	"rollcall/internal/roster"
)

// Aggregator folds sessions into per-student tallies, one session per
// step. Sessions must be added in their fixed processing order: a new
// student's absence counter is pre-seeded with the number of sessions
// already processed, so reordering sessions changes every late-joining
// student's historical-absence baseline.
type Aggregator struct {
	cfg      config.ConfigValues
	logger   *slog.Logger
	students map[string]*StudentRecord
	sessions int
}

// NewAggregator creates an aggregator with a fresh state for one run.
func NewAggregator(cfg config.ConfigValues, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{
		cfg:      cfg,
		logger:   logger,
		students: make(map[string]*StudentRecord),
	}
}

// AddSession classifies one session's deduplicated participants and
// updates the running tallies. An empty session is skipped and does not
// count toward the session total. Every known student missing from the
// session gets one more absence.
func (a *Aggregator) AddSession(ctx context.Context, participants []roster.Participant) {
	if len(participants) == 0 {
		return
	}

	classStart := ClassStartFor(earliestJoin(participants), a.cfg)

	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		key := p.Key()
		status := Classify(p.FirstJoin, classStart, a.cfg)
		seen[key] = true

		rec, ok := a.students[key]
		if !ok {
			rec = &StudentRecord{
				Name:    p.Name,
				Surname: p.Surname,
				ID:      p.ID,
				Email:   p.Email,
				// Sessions before the student's first sighting count as
				// absences.
				Absent: a.sessions,
			}
			a.students[key] = rec
		}

		switch status {
		case StatusNormal:
			rec.Normal++
		case StatusLate:
			rec.Late++
		case StatusAbsent:
			rec.Absent++
		}
	}

	for key, rec := range a.students {
		if !seen[key] {
			rec.Absent++
		}
	}

	a.sessions++

	a.logger.DebugContext(ctx, "session aggregated",
		slog.Time("class_start", classStart),
		slog.Int("participants", len(participants)),
		slog.Int("sessions_processed", a.sessions),
		slog.Int("students_known", len(a.students)))
}

// Sessions returns the number of sessions aggregated so far.
func (a *Aggregator) Sessions() int {
	return a.sessions
}

// Report computes each student's score and finalizes the report,
// sorted by surname then given name.
func (a *Aggregator) Report() *Report {
	students := make([]StudentRecord, 0, len(a.students))
	for _, rec := range a.students {
		out := *rec
		out.Score = Score(out, a.cfg)
		students = append(students, out)
	}

	sort.Slice(students, func(i, j int) bool {
		if students[i].Surname != students[j].Surname {
			return students[i].Surname < students[j].Surname
		}
		return students[i].Name < students[j].Name
	})

	return &Report{
		Students:    students,
		Sessions:    a.sessions,
		TotalPoints: a.cfg.TotalPoints,
	}
}

func earliestJoin(participants []roster.Participant) time.Time {
	earliest := participants[0].FirstJoin
	for _, p := range participants[1:] {
		if p.FirstJoin.Before(earliest) {
			earliest = p.FirstJoin
		}
	}
	return earliest
}
