package ui

import (
	"errors"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// inputWidgets holds references to the form elements so the import flow and
// the slider/entry pair can talk to each other.
type inputWidgets struct {
	dateEntry   *DateEntry
	yearsSlider *widget.Slider
	yearsEntry  *NumericalEntry
	langSelect  *widget.Select
}

// buildInputsCard constructs the sidebar form: birth date, life expectancy
// and language. Every valid change triggers a full recompute.
func (app *LifeWeeksApp) buildInputsCard() *widget.Card {
	sw := &inputWidgets{}

	app.StateMut.RLock()
	birth := app.BirthDate
	years := app.Expectancy
	app.StateMut.RUnlock()

	// --- 1. Birth Date ---
	sw.dateEntry = NewDateEntry()
	sw.dateEntry.SetText(birth.Format(config.DateFormatFullDash))
	sw.dateEntry.Validator = func(s string) error {
		d, err := time.Parse(config.DateFormatFullDash, s)
		if err != nil {
			return errors.New(app.GetMsg(config.TKeyErrDateFormat))
		}
		if err := engine.ValidateBirthDate(d, app.Clock.Now()); err != nil {
			if errors.Is(err, engine.ErrBirthAfterNow) {
				return errors.New(app.GetMsg(config.TKeyErrDateFuture))
			}
			return errors.New(app.GetMsg(config.TKeyErrDateFloor))
		}
		return nil
	}
	sw.dateEntry.OnChanged = func(s string) {
		if sw.dateEntry.Validate() != nil {
			return
		}
		d, _ := time.Parse(config.DateFormatFullDash, s)

		app.StateMut.Lock()
		changed := !d.Equal(app.BirthDate)
		app.BirthDate = d
		app.StateMut.Unlock()

		if changed {
			app.Recompute()
		}
	}

	// --- 2. Life Expectancy (slider and entry stay in sync) ---
	syncing := false

	applyYears := func(years int) {
		if engine.ValidateLifeExpectancy(years) != nil {
			return
		}
		app.StateMut.Lock()
		changed := years != app.Expectancy
		app.Expectancy = years
		app.StateMut.Unlock()

		if changed {
			app.Recompute()
		}
	}

	sw.yearsSlider = widget.NewSlider(config.MinLifeExpectancy, config.MaxLifeExpectancy)
	sw.yearsSlider.Step = 1
	sw.yearsSlider.Value = float64(years)

	sw.yearsEntry = NewNumericalEntry()
	sw.yearsEntry.SetText(strconv.Itoa(years))
	sw.yearsEntry.Validator = func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || engine.ValidateLifeExpectancy(v) != nil {
			return errors.New(app.GetMsg(config.TKeyErrExpRange))
		}
		return nil
	}

	sw.yearsSlider.OnChanged = func(v float64) {
		if syncing {
			return
		}
		syncing = true
		sw.yearsEntry.SetText(strconv.Itoa(int(v)))
		syncing = false
		applyYears(int(v))
	}
	sw.yearsEntry.OnChanged = func(s string) {
		if syncing || sw.yearsEntry.Validate() != nil {
			return
		}
		v, _ := strconv.Atoi(s)
		syncing = true
		sw.yearsSlider.SetValue(float64(v))
		syncing = false
		applyYears(v)
	}

	// --- 3. Language ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))
	sw.langSelect.OnChanged = func(lang string) {
		app.Preferences.SetString(config.PrefLanguage, lang)
		app.UpdateLocalizer()
		// Labels are baked in at build time, so swap the whole page.
		app.Window.SetContent(app.buildContent())
		app.Recompute()
	}

	// --- 4. vCard Import ---
	importBtn := widget.NewButton(app.GetMsg(config.TKeyBtnImport), func() {
		app.importVCard(sw)
	})

	// Form assembly
	itemDate := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), sw.dateEntry)
	itemDate.HintText = app.GetMsg(config.TKeyHelpBirthDate)

	widYears := container.NewBorder(nil, nil, nil,
		widget.NewLabel(app.GetMsg(config.TKeyLblYearsSuf)), sw.yearsEntry)
	itemYears := widget.NewFormItem(app.GetMsg(config.TKeyLblExpectancy),
		container.NewVBox(sw.yearsSlider, widYears))
	itemYears.HintText = app.GetMsg(config.TKeyHelpExpect)

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	form := widget.NewForm(itemDate, itemYears, itemLang)

	return widget.NewCard(app.GetMsg(config.TKeyLblInputs), "",
		container.NewVBox(form, importBtn))
}

// importVCard lets the user pick a contacts file and adopts the first dated
// birthday found in it.
func (app *LifeWeeksApp) importVCard(sw *inputWidgets) {
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		if r == nil {
			return
		}
		defer func() { _ = r.Close() }()

		birth, name, err := engine.BirthDateFromVCard(r)
		if err != nil {
			app.reportImportFailure(err)
			return
		}

		if err := engine.ValidateBirthDate(birth, app.Clock.Now()); err != nil {
			app.reportImportFailure(err)
			return
		}

		// Routing through the entry keeps validation and recompute in one path.
		sw.dateEntry.SetText(birth.Format(config.DateFormatFullDash))

		app.App.SendNotification(fyne.NewNotification(config.AppName,
			app.GetMsgData(config.TKeyNotifImportOK, map[string]interface{}{"Name": name})))
	}, app.Window)

	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

// reportImportFailure logs the error and tells the user why nothing changed.
func (app *LifeWeeksApp) reportImportFailure(err error) {
	slog.Warn(config.ErrVCardParse,
		config.LogKeyComponent, config.CompImport,
		config.LogKeyError, err)
	dialog.ShowInformation(config.TitleImportError, err.Error(), app.Window)
}
