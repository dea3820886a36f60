package attendance

import "rollcall/internal/config"

// Score converts a student's final tallies into the bounded score:
// total points minus the late and absent deductions, never negative.
func Score(rec StudentRecord, cfg config.ConfigValues) float64 {
	deductions := float64(rec.Late)*cfg.LatePenalty + float64(rec.Absent)*cfg.AbsentPenalty
	score := cfg.TotalPoints - deductions
	if score < 0 {
		return 0
	}
	return score
}
