package engine

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-friends/internal/config"
)

// Person is a single contact. Optional text fields use the empty string as their only
// "absent" state: a blank value and a missing value are the same thing.
type Person struct {
	FirstName string
	LastName  string

	// Birthday is nil when unknown. Each Person owns its Birthday exclusively.
	Birthday *Birthday

	Email    string
	Nickname string
	Street   string
	City     string
	State    string
	Zip      string
	Phone    string
}

// NewPerson creates a Person with trimmed first and last names.
func NewPerson(first, last string) *Person {
	return &Person{
		FirstName: strings.TrimSpace(first),
		LastName:  strings.TrimSpace(last),
	}
}

// FullName returns "First Last".
func (p *Person) FullName() string {
	return fmt.Sprintf(config.FormatFullName, p.FirstName, p.LastName)
}

// SetBirthday replaces the birthday wholesale.
func (p *Person) SetBirthday(month, day int) {
	p.Birthday = &Birthday{Month: month, Day: day}
}

// HasMailingAddress reports whether street, city, state and zip are all present.
func (p *Person) HasMailingAddress() bool {
	return p.Street != "" && p.City != "" && p.State != "" && p.Zip != ""
}

// OptionalField is a named pointer to one of the optional text fields,
// used to iterate over them in column or prompt order.
type OptionalField struct {
	Column string
	Value  *string
}

// OptionalFields lists the optional text fields in database column order.
func (p *Person) OptionalFields() []OptionalField {
	return []OptionalField{
		{config.ColEmail, &p.Email},
		{config.ColNickname, &p.Nickname},
		{config.ColStreet, &p.Street},
		{config.ColCity, &p.City},
		{config.ColState, &p.State},
		{config.ColZip, &p.Zip},
		{config.ColPhone, &p.Phone},
	}
}
