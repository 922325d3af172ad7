package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

func TestBuildGrid_Dimensions(t *testing.T) {
	grid := engine.BuildGrid(1774, 80)

	require.Equal(t, 80, grid.Years)
	require.Len(t, grid.Rows, 80)
	for year, row := range grid.Rows {
		assert.Len(t, row, 52, "row %d", year)
	}
	assert.Equal(t, 4160, grid.TotalWeeks())
}

func TestBuildGrid_StatusInvariant(t *testing.T) {
	// status = lived iff absolute week index < weeks lived, for every cell.
	weeksLived := 1774
	grid := engine.BuildGrid(weeksLived, 80)

	for _, row := range grid.Rows {
		for _, c := range row {
			assert.Equal(t, c.Year*52+c.Week, c.Absolute)
			if c.Absolute < weeksLived {
				assert.Equal(t, engine.StatusLived, c.Status, "cell %d", c.Absolute)
			} else {
				assert.Equal(t, engine.StatusFuture, c.Status, "cell %d", c.Absolute)
			}
		}
	}
	assert.Equal(t, weeksLived, grid.LivedWeeks())
}

func TestBuildGrid_EdgeCases(t *testing.T) {
	tests := []struct {
		name       string
		weeksLived int
		years      int
		wantLived  int
	}{
		{
			name:       "Zero weeks lived produces an entirely future grid",
			weeksLived: 0,
			years:      50,
			wantLived:  0,
		},
		{
			name:       "Exactly one week lived marks only the first cell",
			weeksLived: 1,
			years:      50,
			wantLived:  1,
		},
		{
			name:       "Past the horizon marks every cell lived",
			weeksLived: 10000,
			years:      80,
			wantLived:  4160,
		},
		{
			name:       "Exactly at the horizon",
			weeksLived: 4160,
			years:      80,
			wantLived:  4160,
		},
		{
			name:       "Negative input clamps to zero",
			weeksLived: -5,
			years:      50,
			wantLived:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := engine.BuildGrid(tt.weeksLived, tt.years)
			assert.Equal(t, tt.years*52, grid.TotalWeeks())
			assert.Equal(t, tt.wantLived, grid.LivedWeeks())
		})
	}
}
