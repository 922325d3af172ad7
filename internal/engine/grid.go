package engine

import (
	"time"

	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// WeekStatus marks a cell as lived or future.
type WeekStatus string

const (
	StatusLived  WeekStatus = config.StatusLived
	StatusFuture WeekStatus = config.StatusFuture
)

// WeekCell is one week of the life grid.
// It carries no identity beyond its position: Status is a pure function of
// Absolute compared against the weeks-lived count.
type WeekCell struct {
	// Year is the 0-based row index (one synthetic 52-week year per row).
	Year int

	// Week is the 0-based position within the row.
	Week int

	// Absolute is the 0-based week count since birth: Year*52 + Week.
	Absolute int

	// Status is lived iff Absolute < weeks lived.
	Status WeekStatus
}

// Lived reports whether the cell's week has already been lived.
func (c WeekCell) Lived() bool {
	return c.Status == StatusLived
}

// ApproximateDate returns the calendar date the cell's week begins,
// computed as birth + Absolute weeks.
func (c WeekCell) ApproximateDate(birth time.Time) time.Time {
	return birth.AddDate(0, 0, c.Absolute*config.DaysPerWeek)
}

// Grid is the full lifespan laid out as rows of 52 weeks.
// It is stateless and disposable: fully determined by its inputs and
// recomputed on every input change.
type Grid struct {
	// Years is the horizon in years, equal to len(Rows).
	Years int

	// Rows holds Years rows of exactly 52 cells each.
	Rows [][]WeekCell
}

// TotalWeeks returns the number of cells in the grid.
func (g Grid) TotalWeeks() int {
	return g.Years * config.WeeksPerYear
}

// LivedWeeks counts the cells marked lived.
func (g Grid) LivedWeeks() int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row {
			if c.Lived() {
				n++
			}
		}
	}
	return n
}

// BuildGrid produces a grid of lifeExpectancyYears rows by 52 columns.
// A weeksLived count past the horizon marks every cell lived without error;
// negative inputs clamp to zero.
func BuildGrid(weeksLived, lifeExpectancyYears int) Grid {
	if weeksLived < 0 {
		weeksLived = 0
	}
	if lifeExpectancyYears < 0 {
		lifeExpectancyYears = 0
	}

	rows := make([][]WeekCell, lifeExpectancyYears)
	for year := range rows {
		row := make([]WeekCell, config.WeeksPerYear)
		for week := range row {
			absolute := year*config.WeeksPerYear + week

			status := StatusFuture
			if absolute < weeksLived {
				status = StatusLived
			}

			row[week] = WeekCell{
				Year:     year,
				Week:     week,
				Absolute: absolute,
				Status:   status,
			}
		}
		rows[year] = row
	}

	return Grid{Years: lifeExpectancyYears, Rows: rows}
}
