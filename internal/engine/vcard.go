package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// ErrNoBirthDate is returned when a vCard stream contains no contact with a
// dated birthday.
var ErrNoBirthDate = errors.New(config.ErrNoBirthDate)

// BirthDateFromVCard scans a vCard stream for the first contact carrying a
// BDAY with a known year and returns the date plus the contact's display
// name. Malformed cards are skipped to maximize data recovery; year-less
// BDAY values (--MM-DD) are skipped because the grid needs an absolute
// birth year.
func BirthDateFromVCard(r io.Reader) (time.Time, string, error) {
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompImport,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompImport,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		slog.Info(config.MsgImportVCard,
			config.LogKeyComponent, config.CompImport,
			config.LogKeyName, name,
			config.LogKeyDOB, birthDate.Format(config.DateFormatFullDash))

		return birthDate, name, nil
	}

	return time.Time{}, "", ErrNoBirthDate
}

// parseDate handles the vCard BDAY formats that carry a year.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%s: %q", config.ErrDateParse, value)
}
