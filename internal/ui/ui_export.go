package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// buildExportCard constructs the export section of the sidebar.
func (app *LifeWeeksApp) buildExportCard() *widget.Card {
	btnCSV := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportCSV),
		theme.DocumentSaveIcon(), app.exportCSV)
	btnICS := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExportICS),
		theme.DocumentSaveIcon(), app.exportMilestones)

	return widget.NewCard(app.GetMsg(config.TKeyLblExport), "",
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCSV, btnICS))
}

// exportCSV writes the weekly report to a user-chosen file.
func (app *LifeWeeksApp) exportCSV() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()

		app.StateMut.RLock()
		birth := app.BirthDate
		grid := app.Grid
		app.StateMut.RUnlock()

		if err := engine.WriteCSV(wc, birth, grid); err != nil {
			app.reportExportFailure(err)
			return
		}

		slog.Info(config.MsgExportCSV,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyFile, wc.URI().Name(),
			config.LogKeyRows, grid.TotalWeeks())
		app.App.SendNotification(fyne.NewNotification(config.AppName,
			app.GetMsg(config.TKeyNotifExportOK)))
	}, app.Window)

	d.SetFileName(engine.ExportFileName(app.Clock.Now()))
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtCSV}))
	d.Show()
}

// exportMilestones writes the decade milestone calendar to a user-chosen file.
func (app *LifeWeeksApp) exportMilestones() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()

		app.StateMut.RLock()
		birth := app.BirthDate
		years := app.Expectancy
		app.StateMut.RUnlock()

		data, err := engine.BuildMilestoneCalendar(birth, years, app.Clock.Now(), app.milestoneFormatter())
		if err != nil {
			app.reportExportFailure(err)
			return
		}
		if _, err := wc.Write(data); err != nil {
			app.reportExportFailure(fmt.Errorf("%s: %w", config.ErrExportOpen, err))
			return
		}

		slog.Info(config.MsgExportICS,
			config.LogKeyComponent, config.CompExport,
			config.LogKeyFile, wc.URI().Name(),
			config.LogKeySizeBytes, len(data))
		app.App.SendNotification(fyne.NewNotification(config.AppName,
			app.GetMsg(config.TKeyNotifExportOK)))
	}, app.Window)

	d.SetFileName(engine.MilestoneFileName(app.Clock.Now()))
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}

// milestoneFormatter returns a closure that localizes milestone summaries.
func (app *LifeWeeksApp) milestoneFormatter() engine.FormatMilestone {
	return func(age int) string {
		msg := app.GetMsgData(config.TKeyEvtMilestone, map[string]interface{}{"Age": age})
		if msg == config.TKeyEvtMilestone {
			return fmt.Sprintf(config.FallbackMilestone, age)
		}
		return msg
	}
}

// reportExportFailure logs the error and notifies the user.
func (app *LifeWeeksApp) reportExportFailure(err error) {
	slog.Error(config.ErrExportOpen,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyError, err)
	app.App.SendNotification(fyne.NewNotification(config.TitleExportError,
		app.GetMsg(config.TKeyNotifExportErr)))
}
