package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// LifeGrid renders an engine.Grid as a heatmap: one rectangle per week,
// 52 per row, lived weeks in the accent color and future weeks in a light
// neutral. The widget owns no computation; it only paints the grid it is
// handed, so the same instance can be refreshed on every input change.
type LifeGrid struct {
	widget.BaseWidget

	mu   sync.RWMutex
	grid engine.Grid
}

// NewLifeGrid creates an empty heatmap widget.
func NewLifeGrid() *LifeGrid {
	g := &LifeGrid{}
	g.ExtendBaseWidget(g)
	return g
}

// SetGrid replaces the displayed grid and repaints.
func (g *LifeGrid) SetGrid(grid engine.Grid) {
	g.mu.Lock()
	g.grid = grid
	g.mu.Unlock()
	g.Refresh()
}

// snapshot returns the current grid under the read lock.
func (g *LifeGrid) snapshot() engine.Grid {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.grid
}

// CreateRenderer implements fyne.Widget.
func (g *LifeGrid) CreateRenderer() fyne.WidgetRenderer {
	r := &lifeGridRenderer{grid: g}
	r.rebuild()
	return r
}

type lifeGridRenderer struct {
	grid  *LifeGrid
	cells []*canvas.Rectangle
	rows  int
}

// rebuild synchronizes the rectangle pool with the grid dimensions and
// applies the status colors.
func (r *lifeGridRenderer) rebuild() {
	g := r.grid.snapshot()
	r.rows = g.Years

	total := g.TotalWeeks()
	for len(r.cells) < total {
		r.cells = append(r.cells, canvas.NewRectangle(config.ColorFuture))
	}
	r.cells = r.cells[:total]

	i := 0
	for _, row := range g.Rows {
		for _, cell := range row {
			if cell.Lived() {
				r.cells[i].FillColor = config.ColorLived
			} else {
				r.cells[i].FillColor = config.ColorFuture
			}
			i++
		}
	}
}

func (r *lifeGridRenderer) MinSize() fyne.Size {
	const pitch = config.CellSize + config.CellGap
	return fyne.NewSize(
		float32(config.WeeksPerYear*pitch),
		float32(r.rows*pitch),
	)
}

func (r *lifeGridRenderer) Layout(_ fyne.Size) {
	const pitch = config.CellSize + config.CellGap
	cellSize := fyne.NewSize(config.CellSize, config.CellSize)

	for i, cell := range r.cells {
		row := i / config.WeeksPerYear
		col := i % config.WeeksPerYear
		cell.Resize(cellSize)
		cell.Move(fyne.NewPos(float32(col*pitch), float32(row*pitch)))
	}
}

func (r *lifeGridRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.grid.Size())
	for _, cell := range r.cells {
		cell.Refresh()
	}
	canvas.Refresh(r.grid)
}

func (r *lifeGridRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, len(r.cells))
	for i, cell := range r.cells {
		objects[i] = cell
	}
	return objects
}

func (r *lifeGridRenderer) Destroy() {}
