package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// WriteCSV renders the grid as a tabular report: a header plus one row per
// week cell in grid order. Year, WeekOfYear and AbsoluteWeek are 1-based in
// the export contract; the approximate date is birth + (AbsoluteWeek-1)
// weeks, formatted as an ISO calendar date.
func WriteCSV(w io.Writer, birth time.Time, grid Grid) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(config.CSVHeader); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
	}

	for _, row := range grid.Rows {
		for _, cell := range row {
			record := []string{
				strconv.Itoa(cell.Year + 1),
				strconv.Itoa(cell.Week + 1),
				strconv.Itoa(cell.Absolute + 1),
				string(cell.Status),
				cell.ApproximateDate(birth).Format(config.DateFormatFullDash),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCSVWrite, err)
	}
	return nil
}

// ExportFileName returns the report filename for a given generation date,
// e.g. "life_in_weeks_20240101.csv".
func ExportFileName(now time.Time) string {
	return fmt.Sprintf(config.FormatCSVFileName, now.Format(config.DateFormatFileStamp))
}

// MilestoneFileName returns the milestone calendar filename for a given
// generation date, e.g. "life_milestones_20240101.ics".
func MilestoneFileName(now time.Time) string {
	return fmt.Sprintf(config.FormatICSFileName, now.Format(config.DateFormatFileStamp))
}
