// Package store persists the contact list as a comma-separated file with a fixed header.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
)

// Load reads the contact database at path. A missing file is an empty list, not an error.
func Load(path string) ([]*engine.Person, error) {
	log := slog.With(config.LogKeyComponent, config.CompStore, config.LogKeyFile, path)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgDatabaseAbsent)
		return []*engine.Person{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrOpenDatabase, err)
	}
	// Read-only handle; a Close error is not actionable.
	defer func() { _ = f.Close() }()

	people, err := Read(f)
	if err != nil {
		return nil, err
	}

	log.Debug(config.MsgDatabaseLoaded, config.LogKeyCount, len(people))
	return people, nil
}

// Read decodes a contact database stream. Columns are matched by header name,
// so their order does not matter and unknown columns are ignored.
// Short rows are accepted; missing cells count as blank. A stray quote inside
// an unquoted cell is kept as a literal character.
func Read(r io.Reader) ([]*engine.Person, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []*engine.Person{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrReadDatabase, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		// First occurrence wins for duplicated headers.
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	people := []*engine.Person{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrReadDatabase, err)
		}
		people = append(people, decodeRow(row{columns: columns, record: record}))
	}
	return people, nil
}

// row gives named access to one CSV record.
type row struct {
	columns map[string]int
	record  []string
}

// get returns the trimmed cell of column, or "" when the column or cell is missing.
func (r row) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func decodeRow(r row) *engine.Person {
	p := engine.NewPerson(r.get(config.ColFirstName), r.get(config.ColLastName))
	p.Birthday = engine.ParseBirthday(r.get(config.ColMonth), r.get(config.ColDay))
	for _, field := range p.OptionalFields() {
		*field.Value = r.get(field.Column)
	}
	return p
}

// Save writes people to path, replacing any existing file.
func Save(path string, people []*engine.Person) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermDefault)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveDatabase, err)
	}

	if err := Write(f, people); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveDatabase, err)
	}

	slog.Debug(config.MsgDatabaseSaved,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyFile, path,
		config.LogKeyCount, len(people),
	)
	return nil
}

// Write encodes people as a header row followed by one row per person, in list order.
func Write(w io.Writer, people []*engine.Person) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(config.CSVFields); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteDatabase, err)
	}
	for _, p := range people {
		if err := cw.Write(Record(p)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrWriteDatabase, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteDatabase, err)
	}
	return nil
}

// Record returns the cells of p in CSVFields order. Absent values are empty strings.
func Record(p *engine.Person) []string {
	values := map[string]string{
		config.ColFirstName: p.FirstName,
		config.ColLastName:  p.LastName,
	}
	if p.Birthday != nil {
		values[config.ColMonth] = strconv.Itoa(p.Birthday.Month)
		values[config.ColDay] = strconv.Itoa(p.Birthday.Day)
	}
	for _, field := range p.OptionalFields() {
		values[field.Column] = *field.Value
	}

	record := make([]string, len(config.CSVFields))
	for i, col := range config.CSVFields {
		record[i] = values[col]
	}
	return record
}
