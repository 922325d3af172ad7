package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// DecadeBarRow is one pre-formatted row of the decade progress chart.
// The controller localizes the label; the widget stays translation-free.
type DecadeBarRow struct {
	Label   string
	Percent float64 // in [0, 100]
}

// DecadeChart draws a horizontal bar per decade bucket: a light track for
// the full bucket and an accent fill proportional to the lived share.
type DecadeChart struct {
	widget.BaseWidget

	mu   sync.RWMutex
	rows []DecadeBarRow
}

// NewDecadeChart creates an empty chart widget.
func NewDecadeChart() *DecadeChart {
	c := &DecadeChart{}
	c.ExtendBaseWidget(c)
	return c
}

// SetRows replaces the chart data and repaints.
func (c *DecadeChart) SetRows(rows []DecadeBarRow) {
	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
	c.Refresh()
}

func (c *DecadeChart) snapshot() []DecadeBarRow {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rows
}

// CreateRenderer implements fyne.Widget.
func (c *DecadeChart) CreateRenderer() fyne.WidgetRenderer {
	r := &decadeChartRenderer{chart: c}
	r.rebuild()
	return r
}

type decadeChartRenderer struct {
	chart  *DecadeChart
	tracks []*canvas.Rectangle
	fills  []*canvas.Rectangle
	labels []*canvas.Text
	count  int
}

func (r *decadeChartRenderer) rebuild() {
	rows := r.chart.snapshot()
	r.count = len(rows)

	for len(r.tracks) < r.count {
		r.tracks = append(r.tracks, canvas.NewRectangle(config.ColorBarTrack))
		r.fills = append(r.fills, canvas.NewRectangle(config.ColorBar))
		label := canvas.NewText("", theme.Color(theme.ColorNameForeground))
		label.TextSize = theme.TextSize() - 2
		r.labels = append(r.labels, label)
	}
	r.tracks = r.tracks[:r.count]
	r.fills = r.fills[:r.count]
	r.labels = r.labels[:r.count]

	for i, row := range rows {
		r.labels[i].Text = row.Label
	}
}

func (r *decadeChartRenderer) MinSize() fyne.Size {
	rowPitch := float32(config.BarHeight + config.BarGap)
	height := rowPitch * float32(r.count)
	if r.count == 0 {
		height = rowPitch
	}
	return fyne.NewSize(float32(config.BarMaxWidth), height)
}

func (r *decadeChartRenderer) Layout(size fyne.Size) {
	rows := r.chart.snapshot()
	rowPitch := float32(config.BarHeight + config.BarGap)

	// Labels sit inside the bar area, left-aligned over the track.
	barWidth := size.Width
	if barWidth > config.BarMaxWidth {
		barWidth = config.BarMaxWidth
	}

	for i := range r.tracks {
		y := float32(i) * rowPitch

		r.tracks[i].Resize(fyne.NewSize(barWidth, config.BarHeight))
		r.tracks[i].Move(fyne.NewPos(0, y))

		fillWidth := float32(0)
		if i < len(rows) {
			fillWidth = barWidth * float32(rows[i].Percent) / 100
		}
		r.fills[i].Resize(fyne.NewSize(fillWidth, config.BarHeight))
		r.fills[i].Move(fyne.NewPos(0, y))

		labelSize := r.labels[i].MinSize()
		r.labels[i].Move(fyne.NewPos(barWidth+theme.Padding(), y+(config.BarHeight-labelSize.Height)/2))
	}
}

func (r *decadeChartRenderer) Refresh() {
	r.rebuild()
	r.Layout(r.chart.Size())
	for i := range r.tracks {
		r.tracks[i].Refresh()
		r.fills[i].Refresh()
		r.labels[i].Refresh()
	}
	canvas.Refresh(r.chart)
}

func (r *decadeChartRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, 3*r.count)
	for i := range r.tracks {
		objects = append(objects, r.tracks[i], r.fills[i], r.labels[i])
	}
	return objects
}

func (r *decadeChartRenderer) Destroy() {}
