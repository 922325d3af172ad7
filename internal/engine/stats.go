package engine

import (
	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// Summary aggregates the headline numbers derived from a weeks-lived count
// and a life-expectancy horizon.
type Summary struct {
	WeeksLived     int
	TotalWeeks     int
	RemainingWeeks int

	// PercentLived is clamped to [0, 100]. The clamp is the single policy
	// for the overflow case (weeks lived beyond the horizon); RemainingWeeks
	// is clamped to 0 in the same place so the two never disagree.
	PercentLived float64

	// AgeYears is the fractional age implied by the week count.
	AgeYears float64
}

// Summarize derives the headline statistics. Negative inputs clamp to zero,
// matching BuildGrid.
func Summarize(weeksLived, lifeExpectancyYears int) Summary {
	if weeksLived < 0 {
		weeksLived = 0
	}
	if lifeExpectancyYears < 0 {
		lifeExpectancyYears = 0
	}

	total := lifeExpectancyYears * config.WeeksPerYear

	remaining := total - weeksLived
	if remaining < 0 {
		remaining = 0
	}

	percent := 0.0
	if total > 0 {
		percent = float64(weeksLived) / float64(total) * 100
		if percent > config.PercentMax {
			percent = config.PercentMax
		}
	}

	return Summary{
		WeeksLived:     weeksLived,
		TotalWeeks:     total,
		RemainingWeeks: remaining,
		PercentLived:   percent,
		AgeYears:       float64(weeksLived) / config.WeeksPerYear,
	}
}

// DecadeBucket is one 10-year slice of the horizon.
type DecadeBucket struct {
	// StartYear and EndYear bound the bucket as [StartYear, EndYear).
	StartYear int
	EndYear   int

	// WeeksTotal is the bucket size in weeks.
	WeeksTotal int

	// WeeksLived is the lived portion, clamped into [0, WeeksTotal].
	WeeksLived int

	// Percent is WeeksLived over WeeksTotal, in [0, 100].
	Percent float64
}

// DecadeProgress partitions [0, lifeExpectancyYears) into consecutive
// 10-year buckets (the last one may be shorter) and reports how much of
// each has been lived. The whole horizon is always covered, including
// decades entirely in the future.
func DecadeProgress(weeksLived, lifeExpectancyYears int) []DecadeBucket {
	if weeksLived < 0 {
		weeksLived = 0
	}

	var buckets []DecadeBucket
	for start := 0; start < lifeExpectancyYears; start += config.DecadeYears {
		end := start + config.DecadeYears
		if end > lifeExpectancyYears {
			end = lifeExpectancyYears
		}

		weeksTotal := (end - start) * config.WeeksPerYear

		lived := weeksLived - start*config.WeeksPerYear
		if lived < 0 {
			lived = 0
		}
		if lived > weeksTotal {
			lived = weeksTotal
		}

		percent := 0.0
		if weeksTotal > 0 {
			percent = float64(lived) / float64(weeksTotal) * 100
		}

		buckets = append(buckets, DecadeBucket{
			StartYear:  start,
			EndYear:    end,
			WeeksTotal: weeksTotal,
			WeeksLived: lived,
			Percent:    percent,
		})
	}
	return buckets
}

// LifePhase maps a percent-lived value to a coarse phase key.
// The UI translates the key into the localized reflection text.
func LifePhase(percentLived float64) string {
	switch {
	case percentLived < config.PhaseEarlyMax:
		return config.PhaseEarly
	case percentLived < config.PhaseGrowthMax:
		return config.PhaseGrowth
	case percentLived < config.PhaseMaturityMax:
		return config.PhaseMaturity
	default:
		return config.PhaseWisdom
	}
}
