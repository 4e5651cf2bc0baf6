package export

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
)

// CalendarBuilder renders the birthdays of the contact list as an iCalendar feed.
type CalendarBuilder struct {
	Clock engine.Clock // Interface for time mocking.
}

// Encode writes one all-day event per birthday for the previous, current and next
// year, so calendar clients scrolling around "now" always find the event.
// People without a birthday are skipped. An empty feed is still a valid VCALENDAR.
func (b *CalendarBuilder) Encode(w io.Writer, people []*engine.Person) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Local time decides the calendar date; only the stamp is UTC.
	now := b.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, p := range people {
		if p.Birthday == nil {
			continue
		}
		for _, e := range createEvents(p, now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		_, err := io.WriteString(w, config.StubVCalendar)
		return err
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFormat, config.FormatICS,
		config.LogKeyCount, len(cal.Children),
	)
	return nil
}

// createEvents builds the yearly events of one person around now.
func createEvents(p *engine.Person, now time.Time) []*ical.Event {
	loc := now.Location()
	uidBase := eventUID(p)
	summary := fmt.Sprintf(config.ICalSummary, p.FullName())

	events := make([]*ical.Event, 0, config.ICalTargetYrs)
	for y := now.Year() - 1; y <= now.Year()+1; y++ {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, summary)
		event.Props.SetText(config.PropTransp, config.ICalTransp)

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, time.Month(p.Birthday.Month), p.Birthday.Day, 0, 0, 0, 0, loc))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

// eventUID derives a stable identifier from the name and birthday,
// so re-exports update events in place instead of duplicating them.
func eventUID(p *engine.Person) string {
	input := fmt.Sprintf(config.FormatHashInput, p.FullName(), p.Birthday.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
