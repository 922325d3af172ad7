package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeweeks/internal/config"
	"github.com/tartampluch/go-lifeweeks/internal/engine"
)

// mockClock pins "now" for deterministic tests.
type mockClock struct {
	current time.Time
}

func (m mockClock) Now() time.Time {
	return m.current
}

// newTestApp builds a headless controller with a pinned clock.
// By being in package 'ui', tests can reach private methods and fields.
func newTestApp(now time.Time) *LifeWeeksApp {
	a := test.NewApp()
	return &LifeWeeksApp{
		App:         a,
		Preferences: a.Preferences(),
		Clock:       mockClock{current: now},
	}
}

func TestApp_LoadInputs_Defaults(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	app := newTestApp(now)

	app.loadInputs()

	assert.Equal(t, "1990-01-01", app.BirthDate.Format(config.DateFormatFullDash))
	assert.Equal(t, config.DefaultLifeExpectancy, app.Expectancy)
}

func TestApp_LoadInputs_RestoresPreferences(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	app := newTestApp(now)

	app.Preferences.SetString(config.PrefBirthDate, "1985-06-15")
	app.Preferences.SetInt(config.PrefExpectancy, 92)

	app.loadInputs()

	assert.Equal(t, "1985-06-15", app.BirthDate.Format(config.DateFormatFullDash))
	assert.Equal(t, 92, app.Expectancy)
}

func TestApp_LoadInputs_RejectsCorruptPreferences(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthPref string
		yearsPref int
	}{
		{"Unparseable date", "not-a-date", 80},
		{"Future date", "2090-01-01", 80},
		{"Before floor", "1850-01-01", 80},
		{"Expectancy too low", "1990-01-01", 10},
		{"Expectancy too high", "1990-01-01", 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(now)
			app.Preferences.SetString(config.PrefBirthDate, tt.birthPref)
			app.Preferences.SetInt(config.PrefExpectancy, tt.yearsPref)

			app.loadInputs()

			// Invalid values fall back to defaults instead of reaching the engine.
			assert.NoError(t, engine.ValidateBirthDate(app.BirthDate, now))
			assert.NoError(t, engine.ValidateLifeExpectancy(app.Expectancy))
		})
	}
}

func TestApp_Recompute_ReferenceExample(t *testing.T) {
	// Reference scenario: born 1990-01-01, observed 2024-01-01, 80 years.
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app := newTestApp(now)

	app.BirthDate = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	app.Expectancy = 80

	app.Recompute()

	assert.Equal(t, 1774, app.Summary.WeeksLived)
	assert.Equal(t, 4160, app.Summary.TotalWeeks)
	assert.Equal(t, 2386, app.Summary.RemainingWeeks)
	assert.InDelta(t, 42.6, app.Summary.PercentLived, 0.1)

	require.Equal(t, 80, app.Grid.Years)
	assert.Equal(t, 1774, app.Grid.LivedWeeks())
	assert.Len(t, app.Buckets, 8)

	// Inputs are persisted for the next launch.
	assert.Equal(t, "1990-01-01", app.Preferences.String(config.PrefBirthDate))
	assert.Equal(t, 80, app.Preferences.Int(config.PrefExpectancy))
}

func TestApp_BuildReflection_PhaseSelection(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app := newTestApp(now)
	app.SetupI18n()

	tests := []struct {
		name    string
		percent float64
		phrase  string
	}{
		{"Early phase", 10, "start of the journey"},
		{"Growth phase", 40, "growth and discovery"},
		{"Maturity phase", 60, "maturity and experience"},
		{"Wisdom phase", 90, "wisdom and reflection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := engine.Summary{PercentLived: tt.percent, RemainingWeeks: 100}
			text := app.buildReflection(summary)
			assert.Contains(t, text, tt.phrase)
		})
	}
}

func TestApp_MilestoneFormatter_Localized(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	app := newTestApp(now)
	app.SetupI18n()

	format := app.milestoneFormatter()
	assert.Equal(t, "Milestone: 30 years", format(30))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Cap des 30 ans", format(30))
}
