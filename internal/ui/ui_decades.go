package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// buildDecadeCard constructs the decade breakdown: a table of one row per
// 10-year bucket plus a horizontal bar chart of the lived share.
func (app *LifeWeeksApp) buildDecadeCard() *widget.Card {
	table := widget.NewTable(
		// Length callback
		func() (int, int) {
			app.StateMut.RLock()
			defer app.StateMut.RUnlock()
			return len(app.Buckets), config.DecadeTableColumns
		},
		// Create cell callback
		func() fyne.CanvasObject {
			return widget.NewLabel(config.TablePlaceholder)
		},
		// Update cell callback
		func(id widget.TableCellID, o fyne.CanvasObject) {
			label := o.(*widget.Label)

			app.StateMut.RLock()
			defer app.StateMut.RUnlock()
			if id.Row >= len(app.Buckets) {
				return
			}
			b := app.Buckets[id.Row]

			switch id.Col {
			case config.ColIDPeriod:
				label.SetText(app.periodLabel(b))
			case config.ColIDTotal:
				label.SetText(fmt.Sprintf("%d", b.WeeksTotal))
			case config.ColIDLived:
				label.SetText(fmt.Sprintf("%d", b.WeeksLived))
			case config.ColIDPercent:
				label.SetText(fmt.Sprintf("%.1f%%", b.Percent))
			}
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	}
	table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		label := o.(*widget.Label)

		var titleKey string
		switch id.Col {
		case config.ColIDPeriod:
			titleKey = config.TKeyColPeriod
		case config.ColIDTotal:
			titleKey = config.TKeyColTotal
		case config.ColIDLived:
			titleKey = config.TKeyColLived
		case config.ColIDPercent:
			titleKey = config.TKeyColPercent
		}
		label.SetText(app.GetMsg(titleKey))
	}

	table.SetColumnWidth(config.ColIDPeriod, config.ColWidthPeriod)
	table.SetColumnWidth(config.ColIDTotal, config.ColWidthTotal)
	table.SetColumnWidth(config.ColIDLived, config.ColWidthLived)
	table.SetColumnWidth(config.ColIDPercent, config.ColWidthPercent)

	app.decadeTable = table
	app.decadeChart = NewDecadeChart()

	// Tables collapse inside a VBox; give the scroll area a working height.
	tableScroll := container.NewVScroll(table)
	tableScroll.SetMinSize(fyne.NewSize(0, config.DecadeTableMaxHeight))

	return widget.NewCard(app.GetMsg(config.TKeyLblDecades), "",
		container.NewVBox(tableScroll, app.decadeChart))
}

// buildChartRows localizes the bucket labels for the bar chart.
func (app *LifeWeeksApp) buildChartRows(buckets []engine.DecadeBucket) []DecadeBarRow {
	rows := make([]DecadeBarRow, 0, len(buckets))
	for _, b := range buckets {
		label := fmt.Sprintf("%s (%.1f%%)", app.periodLabel(b), b.Percent)
		rows = append(rows, DecadeBarRow{Label: label, Percent: b.Percent})
	}
	return rows
}

// periodLabel renders a bucket as a localized "Start-End years" range.
func (app *LifeWeeksApp) periodLabel(b engine.DecadeBucket) string {
	return app.GetMsgData(config.TKeyFmtPeriod, map[string]interface{}{
		"Start": b.StartYear,
		"End":   b.EndYear - 1,
	})
}
