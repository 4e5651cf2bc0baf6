package export_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
	"github.com/tartampluch/go-friends/internal/export"
	"github.com/xuri/excelize/v2"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func samplePeople() []*engine.Person {
	grace := engine.NewPerson("Grace", "Hopper")
	grace.SetBirthday(12, 9)
	grace.Email = "grace@example.com"
	grace.Nickname = "Amazing Grace"
	grace.Phone = "555-0199"
	grace.Street = "1 Navy Way"
	grace.City = "Arlington"
	grace.State = "VA"
	grace.Zip = "22202"

	alan := engine.NewPerson("Alan", "Turing")

	return []*engine.Person{grace, alan}
}

func TestIsVCardPath(t *testing.T) {
	assert.True(t, export.IsVCardPath("contacts.vcf"))
	assert.True(t, export.IsVCardPath("/tmp/Contacts.VCARD"))
	assert.False(t, export.IsVCardPath("friends.csv"))
	assert.False(t, export.IsVCardPath("vcf"))
}

func TestVCard_RoundTrip(t *testing.T) {
	want := samplePeople()

	var buf bytes.Buffer
	require.NoError(t, export.EncodeVCards(&buf, want))
	assert.Contains(t, buf.String(), "BDAY:--1209")

	got, err := export.DecodeVCards(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("vCard round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeVCards_ForeignCards(t *testing.T) {
	data := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada King Lovelace",
		"BDAY:1815-12-10",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Leap Baby",
		"N:Baby;Leap;;;",
		"BDAY:--0229",
		"END:VCARD",
		"BEGIN:VCARD",
		"VERSION:4.0",
		"FN:Bad Date",
		"BDAY:someday",
		"END:VCARD",
		"",
	}, "\r\n")

	got, err := export.DecodeVCards(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Ada King", got[0].FirstName, "FN without N splits on the last word")
	assert.Equal(t, "Lovelace", got[0].LastName)
	assert.Equal(t, &engine.Birthday{Month: 12, Day: 10}, got[0].Birthday)

	assert.Equal(t, "Leap Baby", got[1].FullName())
	assert.Equal(t, &engine.Birthday{Month: 2, Day: 29}, got[1].Birthday)

	assert.Nil(t, got[2].Birthday, "unparseable BDAY means no birthday")
}

func TestLoadVCardFile_Missing(t *testing.T) {
	got, err := export.LoadVCardFile(filepath.Join(t.TempDir(), "none.vcf"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadVCardFile_DirectoryFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "x.vcf")
	require.NoError(t, os.Mkdir(dir, config.DirPermUserRWX))

	got, err := export.LoadVCardFile(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardParse)
	assert.Nil(t, got)
}

func TestDecodeVCards_StreamError(t *testing.T) {
	got, err := export.DecodeVCards(iotest.ErrReader(errors.New("device gone")))

	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVCardParse)
	assert.Nil(t, got)
}

func TestCalendar_Encode(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	b := &export.CalendarBuilder{Clock: clock}

	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf, samplePeople()))
	ics := buf.String()

	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "SUMMARY:Birthday: Grace Hopper")
	assert.NotContains(t, ics, "Alan Turing", "people without a birthday get no event")
	assert.Equal(t, 3, strings.Count(ics, "BEGIN:VEVENT"), "previous, current and next year")
	for _, day := range []string{"20251209", "20261209", "20271209"} {
		assert.Contains(t, ics, "DTSTART;VALUE=DATE:"+day)
	}
}

func TestCalendar_StableUIDs(t *testing.T) {
	clock := MockClock{CurrentTime: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}
	b := &export.CalendarBuilder{Clock: clock}

	var first, second bytes.Buffer
	require.NoError(t, b.Encode(&first, samplePeople()))
	require.NoError(t, b.Encode(&second, samplePeople()))

	uids := uidLines(first.String())
	assert.Len(t, uids, 3)
	assert.Equal(t, uids, uidLines(second.String()), "re-exports must reuse event UIDs")
}

func uidLines(ics string) []string {
	var out []string
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			out = append(out, line)
		}
	}
	sort.Strings(out)
	return out
}

func TestCalendar_EmptyIsStub(t *testing.T) {
	b := &export.CalendarBuilder{Clock: MockClock{CurrentTime: time.Now()}}

	var buf bytes.Buffer
	require.NoError(t, b.Encode(&buf, []*engine.Person{engine.NewPerson("No", "Birthday")}))
	assert.Equal(t, config.StubVCalendar, buf.String())
}

func TestWorkbook_Alphabetical(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.EncodeWorkbook(&buf, samplePeople()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{config.SheetName}, f.GetSheetList())

	rows, err := f.GetRows(config.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, config.CSVFields, rows[0])
	assert.Equal(t, "Hopper", rows[1][1])
	assert.Equal(t, "12", rows[1][2])
	assert.Equal(t, "Turing", rows[2][1])
}

func TestWriteFile_Formats(t *testing.T) {
	dir := t.TempDir()
	clock := MockClock{CurrentTime: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)}

	for _, format := range export.Formats {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(dir, "friends."+format)
			require.NoError(t, export.WriteFile(path, format, samplePeople(), clock))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestWriteFile_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "friends.pdf")
	err := export.WriteFile(path, "pdf", samplePeople(), MockClock{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrExportFormat)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created for an unknown format")
}
