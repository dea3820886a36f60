package attendance

import (
	"time"

	"rollcall/internal/config"
)

// Classify compares a first-join time against the session's class-start
// instant. The delta is whole minutes, floored at zero: joining before
// class start is on time, never "early". With an absent threshold below
// the late threshold the Late branch is unreachable; that configuration
// is accepted as-is.
func Classify(firstJoin, classStart time.Time, cfg config.ConfigValues) Status {
	minutes := int64(firstJoin.Sub(classStart) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	switch {
	case minutes <= cfg.LateMinutes:
		return StatusNormal
	case minutes <= cfg.AbsentMinutes:
		return StatusLate
	default:
		return StatusAbsent
	}
}

// ClassStartFor combines the configured class-start time-of-day with the
// date of the session's earliest recorded join.
func ClassStartFor(earliestJoin time.Time, cfg config.ConfigValues) time.Time {
	year, month, day := earliestJoin.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, earliestJoin.Location())
	return midnight.Add(cfg.ClassStart)
}
