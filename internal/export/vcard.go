package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
)

// IsVCardPath reports whether path names a vCard file by its extension.
func IsVCardPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == config.ExtVCF || ext == config.ExtVCard
}

// EncodeVCards writes one vCard 4.0 per person. Birthdays carry no year (--MMDD).
func EncodeVCards(w io.Writer, people []*engine.Person) error {
	enc := vcard.NewEncoder(w)
	for _, p := range people {
		if err := enc.Encode(toCard(p)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

func toCard(p *engine.Person) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldFormattedName, p.FullName())
	card.SetName(&vcard.Name{
		GivenName:  p.FirstName,
		FamilyName: p.LastName,
	})

	if p.Birthday != nil {
		card.SetValue(vcard.FieldBirthday, fmt.Sprintf("--%02d%02d", p.Birthday.Month, p.Birthday.Day))
	}
	if p.Email != "" {
		card.SetValue(vcard.FieldEmail, p.Email)
	}
	if p.Nickname != "" {
		card.SetValue(vcard.FieldNickname, p.Nickname)
	}
	if p.Phone != "" {
		card.SetValue(vcard.FieldTelephone, p.Phone)
	}
	if p.Street != "" || p.City != "" || p.State != "" || p.Zip != "" {
		card.AddAddress(&vcard.Address{
			StreetAddress: p.Street,
			Locality:      p.City,
			Region:        p.State,
			PostalCode:    p.Zip,
		})
	}
	return card
}

// LoadVCardFile reads every contact of a .vcf file. Like the CSV store,
// a missing file yields an empty list.
func LoadVCardFile(path string) ([]*engine.Person, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*engine.Person{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	return decodeCards(data), nil
}

// DecodeVCards converts a vCard stream to people. Malformed cards are skipped;
// a failing stream is an error.
func DecodeVCards(r io.Reader) ([]*engine.Person, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	return decodeCards(data), nil
}

// decodeCards works on an in-memory buffer, so every decode error consumes input.
func decodeCards(data []byte) []*engine.Person {
	decoder := vcard.NewDecoder(bytes.NewReader(data))
	people := []*engine.Person{}

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompExport,
				config.LogKeyError, err)
			continue
		}
		people = append(people, fromCard(card))
	}
	return people
}

func fromCard(card vcard.Card) *engine.Person {
	var p *engine.Person
	if n := card.Name(); n != nil && (n.GivenName != "" || n.FamilyName != "") {
		p = engine.NewPerson(n.GivenName, n.FamilyName)
	} else {
		// FN only: the last word is taken as the family name.
		fn := strings.Fields(card.Value(vcard.FieldFormattedName))
		switch len(fn) {
		case 0:
			p = engine.NewPerson("", "")
		case 1:
			p = engine.NewPerson(fn[0], "")
		default:
			p = engine.NewPerson(strings.Join(fn[:len(fn)-1], " "), fn[len(fn)-1])
		}
	}

	if bday := card.Value(vcard.FieldBirthday); bday != "" {
		if month, day, err := parseDate(bday); err == nil {
			p.SetBirthday(month, day)
		} else {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompExport,
				config.LogKeyValue, bday)
		}
	}

	p.Email = strings.TrimSpace(card.Value(vcard.FieldEmail))
	p.Nickname = strings.TrimSpace(card.Value(vcard.FieldNickname))
	p.Phone = strings.TrimSpace(card.Value(vcard.FieldTelephone))
	if addr := card.Address(); addr != nil {
		p.Street = strings.TrimSpace(addr.StreetAddress)
		p.City = strings.TrimSpace(addr.Locality)
		p.State = strings.TrimSpace(addr.Region)
		p.Zip = strings.TrimSpace(addr.PostalCode)
	}
	return p
}

// parseDate extracts month and day from the vCard BDAY layouts, with or without a year.
func parseDate(value string) (int, int, error) {
	layouts := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatNoYearD,
		config.DateFormatNoYearB,
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return int(t.Month()), t.Day(), nil
		}
	}

	return 0, 0, errors.New(config.ErrDateParse)
}
