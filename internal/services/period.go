package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput covers malformed statistics input: unknown periods and
// non-finite nutrient values. Callers match it with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

type StatsPeriod string

const (
	PeriodWeek   StatsPeriod = "week"
	PeriodMonth  StatsPeriod = "month"
	PeriodCustom StatsPeriod = "custom"
)

const (
	periodWeekDays   = 7
	periodMonthDays  = 30
	periodCustomDays = 14
)

func PeriodDayCount(period StatsPeriod) (int, error) {
	switch period {
	case PeriodWeek:
		return periodWeekDays, nil
	case PeriodMonth:
		return periodMonthDays, nil
	case PeriodCustom:
		return periodCustomDays, nil
	default:
		return 0, fmt.Errorf("%w: unsupported period %q", ErrInvalidInput, string(period))
	}
}

// ResolvePeriodRange derives the half-open [from, to) window ending at now,
// together with the number of whole days it spans.
func ResolvePeriodRange(period StatsPeriod, now time.Time) (time.Time, time.Time, int, error) {
	days, err := PeriodDayCount(period)
	if err != nil {
		return time.Time{}, time.Time{}, 0, err
	}

	to := now
	from := now.AddDate(0, 0, -days)

	span := to.Sub(from)
	totalDays := int(span / (24 * time.Hour))
	if span%(24*time.Hour) != 0 {
		totalDays++
	}
	if totalDays < 1 {
		totalDays = 1
	}
	return from, to, totalDays, nil
}
