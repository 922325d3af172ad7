package config

import (
	"image/color"
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Life in Weeks"
	AppID       = "com.github.tartampluch.go-lifeweeks"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for log files.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating the app cache directory.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Business Logic: Calendar & Grid
// -----------------------------------------------------------------------------

const (
	// WeeksPerYear defines the synthetic 52-week year used by the grid.
	// Rows are sequential 7-day blocks from the birth date, not ISO weeks.
	WeeksPerYear = 52
	DaysPerWeek  = 7

	// Birth date floor year.
	MinBirthYear = 1900

	// Life expectancy bounds (grid horizon, not a medical estimate).
	MinLifeExpectancy     = 50
	MaxLifeExpectancy     = 100
	DefaultLifeExpectancy = 80

	// DecadeYears is the bucket size for the progress breakdown.
	DecadeYears = 10

	// Life phase thresholds (percent of life lived).
	PhaseEarlyMax    = 25.0
	PhaseGrowthMax   = 50.0
	PhaseMaturityMax = 75.0

	// PercentMax is the ceiling for percent-lived. Weeks lived beyond the
	// horizon are clamped here so every derived view agrees (see Summarize).
	PercentMax = 100.0
)

// -----------------------------------------------------------------------------
// Life Phases
// -----------------------------------------------------------------------------

const (
	PhaseEarly    = "early"
	PhaseGrowth   = "growth"
	PhaseMaturity = "maturity"
	PhaseWisdom   = "wisdom"
)

// -----------------------------------------------------------------------------
// Week Status
// -----------------------------------------------------------------------------

const (
	StatusLived  = "lived"
	StatusFuture = "future"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 980
	MainWindowHeight = 720

	// Preference Keys
	PrefBirthDate  = "birth_date"
	PrefExpectancy = "life_expectancy_years"
	PrefLanguage   = "language"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Heatmap & Chart Layout
// -----------------------------------------------------------------------------

const (
	// Heatmap cell geometry (logical pixels).
	CellSize = 9
	CellGap  = 1

	// Decade bar chart geometry.
	BarMaxWidth = 420
	BarHeight   = 18
	BarGap      = 6
)

// Heatmap and chart colors.
var (
	// ColorLived matches the palette of the original visualization.
	ColorLived = color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	// ColorFuture is a light neutral for weeks not yet reached.
	ColorFuture = color.NRGBA{R: 0xF0, G: 0xF0, B: 0xF0, A: 0xFF}
	// ColorBar fills the decade progress bars.
	ColorBar = color.NRGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	// ColorBarTrack is the unfilled remainder of a progress bar.
	ColorBarTrack = color.NRGBA{R: 0xE4, G: 0xE4, B: 0xE4, A: 0xFF}
)

// -----------------------------------------------------------------------------
// Decade Table Layout
// -----------------------------------------------------------------------------

const (
	// Table Column IDs
	ColIDPeriod  = 0
	ColIDTotal   = 1
	ColIDLived   = 2
	ColIDPercent = 3

	DecadeTableColumns = 4

	// Table Layout
	ColWidthPeriod  = 140
	ColWidthTotal   = 120
	ColWidthLived   = 120
	ColWidthPercent = 110

	TablePlaceholder = "Cell Content"

	DecadeTableMaxHeight = 320
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle      = "win_title"
	TKeyIntro         = "intro_text"
	TKeyLblInputs     = "lbl_inputs"
	TKeyLblBirthDate  = "lbl_birth_date"
	TKeyHelpBirthDate = "help_birth_date"
	TKeyLblExpectancy = "lbl_expectancy"
	TKeyHelpExpect    = "help_expectancy"
	TKeyLblYearsSuf   = "lbl_years_suffix"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyBtnImport     = "btn_import_vcard"

	// Metrics
	TKeyMetWeeksLived = "metric_weeks_lived"
	TKeyMetRemaining  = "metric_weeks_remaining"
	TKeyMetPercent    = "metric_percent_lived"
	TKeyMetAge        = "metric_current_age"
	TKeyFmtAgeYears   = "fmt_age_years" // Requires Age

	// Sections
	TKeyLblHeatmap   = "lbl_heatmap"
	TKeyLblDecades   = "lbl_decades"
	TKeyLblReflect   = "lbl_reflections"
	TKeyLblExport    = "lbl_export"
	TKeyGridCaption  = "grid_caption" // Requires Lived, Total
	TKeyLblFooter    = "lbl_footer"   // Requires Version
	TKeyBtnExportCSV = "btn_export_csv"
	TKeyBtnExportICS = "btn_export_ics"

	// Decade table headers
	TKeyColPeriod  = "col_period"
	TKeyColTotal   = "col_total_weeks"
	TKeyColLived   = "col_lived_weeks"
	TKeyColPercent = "col_percent"
	TKeyFmtPeriod  = "fmt_period" // Requires Start, End

	// Life phases
	TKeyPhaseEarly    = "phase_early"
	TKeyPhaseGrowth   = "phase_growth"
	TKeyPhaseMaturity = "phase_maturity"
	TKeyPhaseWisdom   = "phase_wisdom"
	TKeyReflectText   = "reflect_text" // Requires Lived, Remaining, YearsAhead

	// Calendar events
	TKeyEvtMilestone = "event_milestone" // Requires Age

	// Notifications
	TKeyNotifExportOK  = "notif_export_success"
	TKeyNotifExportErr = "notif_export_error"
	TKeyNotifImportOK  = "notif_import_success" // Requires Name

	// Validation Errors (UI)
	TKeyErrDateFormat = "err_date_format"
	TKeyErrDateFuture = "err_date_future"
	TKeyErrDateFloor  = "err_date_floor"
	TKeyErrExpRange   = "err_expectancy_range"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Life in Weeks//Engine//EN"
	ICalCalName = "Life Milestones"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "golifeweeks"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatFileStamp = "20060102"

	// UID Generation
	UIDSalt         = "go-lifeweeks-v1-" // Salt for deterministic UID generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%d|%s"
	FormatUID       = "%s-%d@%s"

	// Export filenames embed the generation date.
	FormatCSVFileName = "life_in_weeks_%s.csv"
	FormatICSFileName = "life_milestones_%s.ics"

	// File Extensions
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtCSV   = ".csv"
	ExtICS   = ".ics"
)

// CSVHeader is the fixed column set of the weekly report.
// The order is part of the export contract.
var CSVHeader = []string{"Year", "WeekOfYear", "AbsoluteWeek", "Status", "ApproximateDate"}

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrBirthAfterNow    = "invalid birth date: date is in the future"
	ErrBirthBeforeFloor = "invalid birth date: date is before the supported floor"
	ErrExpectancyRange  = "invalid life expectancy: value outside allowed bounds"
	ErrDateParse        = "unable to parse date"
	ErrNoBirthDate      = "no contact with a dated birthday found"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrCSVWrite         = "failed to write CSV report"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
	ErrExportOpen       = "failed to open export target"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	DefaultLanguage  = "en"
	DefaultBirthDate = "1990-01-01"

	FallbackName      = "Unknown"
	FallbackMilestone = "Milestone: %d years"

	// StubVCalendar is the minimal valid iCalendar object used when no
	// milestone fits the horizon. A valid VCALENDAR keeps calendar clients
	// from flagging the file as corrupt.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	TitleExportError = "Export Error"
	TitleImportError = "Import Error"

	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgRecompute     = "Recomputing life grid"
	MsgGridBuilt     = "Life grid built"
	MsgExportCSV     = "CSV report written"
	MsgExportICS     = "Milestone calendar written"
	MsgImportVCard   = "Birth date imported from vCard"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid or year-less birthday"
	MsgInputRejected = "Input rejected at boundary"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyYears     = "expectancy_years"
	LogKeyWeeks     = "weeks_lived"
	LogKeyTotal     = "total_weeks"
	LogKeyRows      = "rows"
	LogKeyPercent   = "percent_lived"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompExport = "export"
	CompImport = "import"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble  = 2
	LayoutColumnsMetrics = 4
)
