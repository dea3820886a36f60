package config

import (
	"strconv"
	"strings"
	"time"

	apperrors "rollcall/internal/errors"
)

// AttendanceConfig is the raw, string-typed attendance configuration as
// entered by the user. It is transient input and never persisted.
type AttendanceConfig struct {
	ClassStart    string
	ClassEnd      string
	LateMinutes   string
	AbsentMinutes string
	TotalPoints   string
	LatePenalty   string
	AbsentPenalty string
}

// ConfigValues is the validated numeric form of AttendanceConfig.
// ClassStart is the class-start time-of-day as an offset from midnight;
// the class-end time is only checked during resolution and not carried.
//
// No ordering is enforced between LateMinutes and AbsentMinutes: an
// absent threshold below the late threshold is accepted and makes the
// Late classification unreachable.
type ConfigValues struct {
	ClassStart    time.Duration
	LateMinutes   int64
	AbsentMinutes int64
	TotalPoints   float64
	LatePenalty   float64
	AbsentPenalty float64
}

// ResolveAttendance parses and validates the raw attendance settings.
// It fails fast on the first invalid field, naming it in the message,
// and never returns a partial result.
func ResolveAttendance(cfg AttendanceConfig) (ConfigValues, error) {
	classStart, err := parseClockTime(cfg.ClassStart)
	if err != nil {
		return ConfigValues{}, err
	}
	classEnd, err := parseClockTime(cfg.ClassEnd)
	if err != nil {
		return ConfigValues{}, err
	}
	if classEnd <= classStart {
		return ConfigValues{}, apperrors.NewConfigError("class end time must be after the start time", nil)
	}

	lateMinutes, err := parseMinutes(cfg.LateMinutes, "late minutes")
	if err != nil {
		return ConfigValues{}, err
	}
	absentMinutes, err := parseMinutes(cfg.AbsentMinutes, "absent minutes")
	if err != nil {
		return ConfigValues{}, err
	}

	totalPoints, err := parsePoints(cfg.TotalPoints, "total points")
	if err != nil {
		return ConfigValues{}, err
	}
	latePenalty, err := parsePoints(cfg.LatePenalty, "late penalty")
	if err != nil {
		return ConfigValues{}, err
	}
	absentPenalty, err := parsePoints(cfg.AbsentPenalty, "absent penalty")
	if err != nil {
		return ConfigValues{}, err
	}

	return ConfigValues{
		ClassStart:    classStart,
		LateMinutes:   lateMinutes,
		AbsentMinutes: absentMinutes,
		TotalPoints:   totalPoints,
		LatePenalty:   latePenalty,
		AbsentPenalty: absentPenalty,
	}, nil
}

// parseClockTime parses a strict 24-hour HH:MM time of day and returns
// it as an offset from midnight.
func parseClockTime(input string) (time.Duration, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(input))
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindConfig, "invalid time format %q: use HH:MM", input)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// parseMinutes parses an integer minute threshold. Negative values are
// accepted and simply classify every participant as late or absent.
func parseMinutes(input, field string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindConfig, "%s must be a number", field)
	}
	return v, nil
}

func parsePoints(input, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, apperrors.Newf(apperrors.KindConfig, "%s must be a number", field)
	}
	return v, nil
}
