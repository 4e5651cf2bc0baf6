package engine

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/tartampluch/go-friends/internal/config"
)

// Upcoming is one row of the upcoming-birthdays report.
type Upcoming struct {
	Index     int // position in the original list
	Person    *Person
	DaysUntil int
}

// Label is a printable mailing-label block.
type Label struct {
	Name     string
	Street   string
	CityLine string // "City, State Zip"
}

// Alphabetical returns a copy of people sorted by last name then first name,
// ignoring case. Equal keys keep their list order.
func Alphabetical(people []*Person) []*Person {
	sorted := slices.Clone(people)
	slices.SortStableFunc(sorted, func(a, b *Person) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)),
			strings.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)),
		)
	})
	return sorted
}

// UpcomingBirthdays ranks people who have a birthday by days until its next occurrence
// relative to now. People without a birthday are left out. The ranking key is computed
// once per person and the sort is stable, so ties keep list order.
func UpcomingBirthdays(people []*Person, now time.Time) []Upcoming {
	today := TodayOfYear(now)

	var out []Upcoming
	for i, p := range people {
		if p.Birthday == nil {
			continue
		}
		out = append(out, Upcoming{
			Index:     i,
			Person:    p,
			DaysUntil: DaysUntil(today, p.Birthday.DayOfYear()),
		})
	}

	slices.SortStableFunc(out, func(a, b Upcoming) int {
		return cmp.Compare(a.DaysUntil, b.DaysUntil)
	})
	return out
}

// MailingLabels builds labels for people with a complete postal address, in list order.
// A person missing any of street, city, state or zip is skipped.
func MailingLabels(people []*Person) []Label {
	var out []Label
	for _, p := range people {
		if !p.HasMailingAddress() {
			continue
		}
		out = append(out, Label{
			Name:     p.FullName(),
			Street:   p.Street,
			CityLine: fmt.Sprintf(config.FormatCityLine, p.City, p.State, p.Zip),
		})
	}
	return out
}
