package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

//go:embed Icon.png
var appIconData []byte

// LifeWeeksApp encapsulates the UI state, preferences, and the recompute
// pipeline. One user interaction triggers one full recomputation of the
// grid and every derived view; there is no incremental state.
type LifeWeeksApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context
	Clock       engine.Clock // Injected clock for testability

	SupportedLanguages []string

	// Model state, replaced wholesale by Recompute.
	StateMut   sync.RWMutex
	BirthDate  time.Time
	Expectancy int
	Grid       engine.Grid
	Summary    engine.Summary
	Buckets    []engine.DecadeBucket

	// Widgets refreshed by Recompute.
	lifeGrid        *LifeGrid
	decadeChart     *DecadeChart
	decadeTable     *widget.Table
	metricLived     *widget.Label
	metricRemaining *widget.Label
	metricPercent   *widget.Label
	metricAge       *widget.Label
	captionLabel    *widget.Label
	reflectLabel    *widget.Label
}

// NewLifeWeeksApp constructs the application and wires dependencies.
func NewLifeWeeksApp(a fyne.App, ctx context.Context) *LifeWeeksApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &LifeWeeksApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the main window and enters the UI loop.
func (app *LifeWeeksApp) Run() {
	app.SetupI18n()
	app.loadInputs()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	app.Window.SetContent(app.buildContent())

	app.Recompute()
	app.Window.ShowAndRun()
}

// loadInputs restores the last inputs from preferences, falling back to
// defaults when a stored value no longer passes boundary validation.
func (app *LifeWeeksApp) loadInputs() {
	now := app.Clock.Now()

	birthText := app.Preferences.StringWithFallback(config.PrefBirthDate, config.DefaultBirthDate)
	birth, err := time.Parse(config.DateFormatFullDash, birthText)
	if err != nil || engine.ValidateBirthDate(birth, now) != nil {
		slog.Warn(config.MsgInputRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, birthText)
		birth, _ = time.Parse(config.DateFormatFullDash, config.DefaultBirthDate)
	}

	years := app.Preferences.IntWithFallback(config.PrefExpectancy, config.DefaultLifeExpectancy)
	if engine.ValidateLifeExpectancy(years) != nil {
		slog.Warn(config.MsgInputRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, years)
		years = config.DefaultLifeExpectancy
	}

	app.StateMut.Lock()
	app.BirthDate = birth
	app.Expectancy = years
	app.StateMut.Unlock()
}

// buildContent assembles the single-page layout: inputs and exports in a
// sidebar, the visualization fan-out in the scrollable main column.
func (app *LifeWeeksApp) buildContent() fyne.CanvasObject {
	sidebar := container.NewVBox(
		app.buildInputsCard(),
		app.buildExportCard(),
	)

	intro := widget.NewLabel(app.GetMsg(config.TKeyIntro))
	intro.Wrapping = fyne.TextWrapWord

	app.lifeGrid = NewLifeGrid()
	app.captionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	heatmapCard := widget.NewCard(app.GetMsg(config.TKeyLblHeatmap), "",
		container.NewVBox(app.captionLabel, container.NewHScroll(app.lifeGrid)))

	app.reflectLabel = widget.NewLabel("")
	app.reflectLabel.Wrapping = fyne.TextWrapWord
	reflectCard := widget.NewCard(app.GetMsg(config.TKeyLblReflect), "", app.reflectLabel)

	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewVBox(
		intro,
		app.buildMetricsRow(),
		heatmapCard,
		app.buildDecadeCard(),
		reflectCard,
		footerLabel,
	)

	return container.NewBorder(nil, nil, container.NewVScroll(sidebar), nil,
		container.NewVScroll(container.NewPadded(content)))
}

// buildMetricsRow creates the four headline metric displays.
func (app *LifeWeeksApp) buildMetricsRow() fyne.CanvasObject {
	metric := func(titleKey string) (*widget.Label, fyne.CanvasObject) {
		title := widget.NewLabelWithStyle(app.GetMsg(titleKey), fyne.TextAlignCenter, fyne.TextStyle{})
		value := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		return value, container.NewVBox(title, value)
	}

	var livedBox, remainingBox, percentBox, ageBox fyne.CanvasObject
	app.metricLived, livedBox = metric(config.TKeyMetWeeksLived)
	app.metricRemaining, remainingBox = metric(config.TKeyMetRemaining)
	app.metricPercent, percentBox = metric(config.TKeyMetPercent)
	app.metricAge, ageBox = metric(config.TKeyMetAge)

	return container.NewGridWithColumns(config.LayoutColumnsMetrics,
		livedBox, remainingBox, percentBox, ageBox)
}

// Recompute runs the full pipeline for the current inputs and refreshes
// every derived view. It also persists the inputs as preferences.
func (app *LifeWeeksApp) Recompute() {
	start := time.Now()
	now := app.Clock.Now()

	app.StateMut.Lock()
	birth := app.BirthDate
	years := app.Expectancy

	weeksLived := engine.WeeksLived(birth, now)
	app.Grid = engine.BuildGrid(weeksLived, years)
	app.Summary = engine.Summarize(weeksLived, years)
	app.Buckets = engine.DecadeProgress(weeksLived, years)

	grid := app.Grid
	summary := app.Summary
	buckets := app.Buckets
	app.StateMut.Unlock()

	app.Preferences.SetString(config.PrefBirthDate, birth.Format(config.DateFormatFullDash))
	app.Preferences.SetInt(config.PrefExpectancy, years)

	app.refreshViews(grid, summary, buckets)

	slog.Info(config.MsgGridBuilt,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDOB, birth.Format(config.DateFormatFullDash),
		config.LogKeyYears, years,
		config.LogKeyWeeks, summary.WeeksLived,
		config.LogKeyTotal, summary.TotalWeeks,
		config.LogKeyPercent, summary.PercentLived,
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
}

// refreshViews pushes a computed model into the widgets.
func (app *LifeWeeksApp) refreshViews(grid engine.Grid, summary engine.Summary, buckets []engine.DecadeBucket) {
	if app.lifeGrid != nil {
		app.lifeGrid.SetGrid(grid)
	}
	if app.decadeChart != nil {
		app.decadeChart.SetRows(app.buildChartRows(buckets))
	}
	if app.decadeTable != nil {
		app.decadeTable.Refresh()
	}

	if app.metricLived != nil {
		app.metricLived.SetText(fmt.Sprintf("%d", summary.WeeksLived))
		app.metricRemaining.SetText(fmt.Sprintf("%d", summary.RemainingWeeks))
		app.metricPercent.SetText(fmt.Sprintf("%.1f%%", summary.PercentLived))
		app.metricAge.SetText(app.GetMsgData(config.TKeyFmtAgeYears,
			map[string]interface{}{"Age": fmt.Sprintf("%.1f", summary.AgeYears)}))
	}

	if app.captionLabel != nil {
		app.captionLabel.SetText(app.GetMsgData(config.TKeyGridCaption, map[string]interface{}{
			"Lived": summary.WeeksLived,
			"Total": summary.TotalWeeks,
		}))
	}

	if app.reflectLabel != nil {
		app.reflectLabel.SetText(app.buildReflection(summary))
	}
}

// buildReflection renders the localized life-phase text plus the temporal
// perspective lines.
func (app *LifeWeeksApp) buildReflection(summary engine.Summary) string {
	var phaseKey string
	switch engine.LifePhase(summary.PercentLived) {
	case config.PhaseEarly:
		phaseKey = config.TKeyPhaseEarly
	case config.PhaseGrowth:
		phaseKey = config.TKeyPhaseGrowth
	case config.PhaseMaturity:
		phaseKey = config.TKeyPhaseMaturity
	default:
		phaseKey = config.TKeyPhaseWisdom
	}

	perspective := app.GetMsgData(config.TKeyReflectText, map[string]interface{}{
		"Lived":      summary.WeeksLived,
		"Remaining":  summary.RemainingWeeks,
		"YearsAhead": fmt.Sprintf("%.1f", float64(summary.RemainingWeeks)/config.WeeksPerYear),
	})

	return app.GetMsg(phaseKey) + "\n\n" + perspective
}
