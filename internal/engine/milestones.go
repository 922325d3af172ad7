package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-lifeweeks/internal/config"
)

// FormatMilestone allows the UI to inject a localized event summary.
// It receives the age reached at the milestone.
type FormatMilestone func(age int) string

// BuildMilestoneCalendar generates an iCalendar with one all-day event per
// decade birthday inside the horizon (ages 10, 20, ... < lifeExpectancyYears).
// UIDs are hashed deterministically so re-exports stay stable across runs.
// An empty horizon still yields a valid stub VCALENDAR.
func BuildMilestoneCalendar(birth time.Time, lifeExpectancyYears int, now time.Time, format FormatMilestone) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Milestones are calendar dates in the user's zone; only the stamp is UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	loc := birth.Location()

	for age := config.DecadeYears; age < lifeExpectancyYears; age += config.DecadeYears {
		event := ical.NewEvent()

		input := fmt.Sprintf(config.FormatHashInput,
			birth.Format(config.DateFormatFullDash), age, config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])
		event.Props.SetText(config.PropUID,
			fmt.Sprintf(config.FormatUID, uidBase, age, config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackMilestone, age)
		if format != nil {
			summary = format(age)
		}
		event.Props.SetText(config.PropSummary, summary)

		// Go's time.Date normalizes Feb 29 to March 1st in non-leap years.
		milestoneDate := time.Date(birth.Year()+age, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(milestoneDate)
		event.Props.Set(dtStartProp)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}
