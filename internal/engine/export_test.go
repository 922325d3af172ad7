package engine_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

func TestWriteCSV_Contract(t *testing.T) {
	birth := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	grid := engine.BuildGrid(3, 50)

	var buf bytes.Buffer
	require.NoError(t, engine.WriteCSV(&buf, birth, grid))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// Header plus one row per cell.
	require.Len(t, records, 1+50*52)
	assert.Equal(t, []string{"Year", "WeekOfYear", "AbsoluteWeek", "Status", "ApproximateDate"}, records[0])

	// Row 1 is the birth week itself.
	assert.Equal(t, []string{"1", "1", "1", "lived", "1990-01-01"}, records[1])

	// Row 4 is the first future week (3 weeks lived).
	assert.Equal(t, []string{"1", "4", "4", "future", "1990-01-22"}, records[4])

	// Row 53 wraps into year 2.
	assert.Equal(t, "2", records[53][0])
	assert.Equal(t, "1", records[53][1])
	assert.Equal(t, "53", records[53][2])
}

// TestWriteCSV_ApproximateDates checks that row i's date is birth + i weeks
// (0-indexed over data rows).
func TestWriteCSV_ApproximateDates(t *testing.T) {
	birth := time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC) // leapling birth date
	grid := engine.BuildGrid(100, 50)

	var buf bytes.Buffer
	require.NoError(t, engine.WriteCSV(&buf, birth, grid))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	for i, rec := range records[1:] {
		want := birth.AddDate(0, 0, i*7).Format("2006-01-02")
		assert.Equal(t, want, rec[4], "row %d", i)
		if i > 400 {
			break // spot check is enough past the first years
		}
	}
}

func TestExportFileNames(t *testing.T) {
	now := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "life_in_weeks_20240102.csv", engine.ExportFileName(now))
	assert.Equal(t, "life_milestones_20240102.ics", engine.MilestoneFileName(now))
}
