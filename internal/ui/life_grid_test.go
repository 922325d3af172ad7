package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
	"github.com/tartampluch/go-lifeweeks/internal/ui"
)

func TestLifeGrid_RendersOneRectanglePerWeek(t *testing.T) {
	grid := ui.NewLifeGrid()
	window := test.NewWindow(grid)
	defer window.Close()

	grid.SetGrid(engine.BuildGrid(100, 50))

	renderer := test.WidgetRenderer(grid)
	assert.Len(t, renderer.Objects(), 50*52)
}

func TestLifeGrid_StatusColors(t *testing.T) {
	grid := ui.NewLifeGrid()
	window := test.NewWindow(grid)
	defer window.Close()

	// 3 weeks lived: cells 0-2 accent, the rest neutral.
	grid.SetGrid(engine.BuildGrid(3, 50))

	renderer := test.WidgetRenderer(grid)
	objects := renderer.Objects()
	require.Len(t, objects, 50*52)

	lived := 0
	for i, o := range objects {
		rect, ok := o.(*canvas.Rectangle)
		require.True(t, ok, "object %d is not a rectangle", i)
		if rect.FillColor == config.ColorLived {
			lived++
			assert.Less(t, i, 3, "only the first three cells may be accented")
		} else {
			assert.Equal(t, config.ColorFuture, rect.FillColor, "cell %d", i)
		}
	}
	assert.Equal(t, 3, lived)
}

func TestLifeGrid_ResizesWithHorizon(t *testing.T) {
	grid := ui.NewLifeGrid()
	window := test.NewWindow(grid)
	defer window.Close()

	grid.SetGrid(engine.BuildGrid(0, 50))
	renderer := test.WidgetRenderer(grid)
	assert.Len(t, renderer.Objects(), 50*52)

	// Growing the horizon must grow the rectangle pool.
	grid.SetGrid(engine.BuildGrid(0, 100))
	assert.Len(t, renderer.Objects(), 100*52)

	// Shrinking must drop the excess.
	grid.SetGrid(engine.BuildGrid(0, 60))
	assert.Len(t, renderer.Objects(), 60*52)
}

func TestLifeGrid_MinSizeTracksRows(t *testing.T) {
	grid := ui.NewLifeGrid()
	window := test.NewWindow(grid)
	defer window.Close()

	grid.SetGrid(engine.BuildGrid(0, 80))
	renderer := test.WidgetRenderer(grid)

	const pitch = config.CellSize + config.CellGap
	min := renderer.MinSize()
	assert.Equal(t, float32(52*pitch), min.Width)
	assert.Equal(t, float32(80*pitch), min.Height)
}
