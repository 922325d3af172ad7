package engine

import (
	"errors"
	"time"

	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// Boundary validation errors. The UI maps these to localized messages.
var (
	ErrBirthAfterNow    = errors.New(config.ErrBirthAfterNow)
	ErrBirthBeforeFloor = errors.New(config.ErrBirthBeforeFloor)
	ErrExpectancyRange  = errors.New(config.ErrExpectancyRange)
)

// WeeksLived returns the number of whole weeks elapsed between the birth
// date and the reference date. Both dates are normalized to midnight UTC
// before subtracting so that time zones and DST shifts cannot skew the day
// count. A reference earlier than the birth date clamps to 0: the function
// is total over all inputs, and callers are expected to reject such input
// at the boundary via ValidateBirthDate.
func WeeksLived(birth, reference time.Time) int {
	days := daysBetween(birth, reference)
	if days <= 0 {
		return 0
	}
	return days / config.DaysPerWeek
}

// daysBetween counts whole calendar days from a to b.
func daysBetween(a, b time.Time) int {
	ad := midnightUTC(a)
	bd := midnightUTC(b)
	return int(bd.Sub(ad).Hours() / 24)
}

// midnightUTC strips the time-of-day and zone from a date.
// Birthdays are calendar dates, not instants.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidateBirthDate rejects birth dates after 'now' or before the
// supported floor (Jan 1st of config.MinBirthYear). No computation should
// run on a date that fails here.
func ValidateBirthDate(birth, now time.Time) error {
	floor := time.Date(config.MinBirthYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	b := midnightUTC(birth)

	if b.Before(floor) {
		return ErrBirthBeforeFloor
	}
	if b.After(midnightUTC(now)) {
		return ErrBirthAfterNow
	}
	return nil
}

// ValidateLifeExpectancy rejects horizons outside the allowed bounds.
func ValidateLifeExpectancy(years int) error {
	if years < config.MinLifeExpectancy || years > config.MaxLifeExpectancy {
		return ErrExpectancyRange
	}
	return nil
}
