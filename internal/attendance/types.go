// Package attendance classifies participant punctuality and aggregates
// per-student tallies across sessions into the final report.
package attendance

// Status is the punctuality classification for one participant in one
// session.
type Status int

const (
	// StatusNormal means the participant joined within the late
	// threshold of class start.
	StatusNormal Status = iota
	// StatusLate means the participant joined after the late threshold
	// but within the absent threshold.
	StatusLate
	// StatusAbsent means the participant joined after the absent
	// threshold, or not at all.
	StatusAbsent
)

// String returns the status label.
func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusLate:
		return "late"
	case StatusAbsent:
		return "absent"
	default:
		return "unknown"
	}
}

// StudentRecord is the aggregate tally for one student across the whole
// run. Normal, Late, and Absent always sum to the number of sessions
// processed.
type StudentRecord struct {
	Name    string
	Surname string
	ID      string
	Email   string
	Normal  int
	Late    int
	Absent  int
	Score   float64
}

// Report is the finished attendance report: students sorted by surname
// then name, the number of sessions that yielded participants, and the
// configured total points carried through for score display.
type Report struct {
	Students    []StudentRecord
	Sessions    int
	TotalPoints float64
}
