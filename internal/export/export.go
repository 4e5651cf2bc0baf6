// Package export converts the contact list to other formats (vCard, iCalendar, Excel)
// and imports contacts from vCard files.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
)

// Formats lists the accepted export format names.
var Formats = []string{config.FormatVCF, config.FormatICS, config.FormatXLSX}

// Write encodes people to w in the named format.
func Write(w io.Writer, format string, people []*engine.Person, clock engine.Clock) error {
	switch format {
	case config.FormatVCF:
		return EncodeVCards(w, people)
	case config.FormatICS:
		b := &CalendarBuilder{Clock: clock}
		return b.Encode(w, people)
	case config.FormatXLSX:
		return EncodeWorkbook(w, people)
	default:
		return fmt.Errorf("%s: %q", config.ErrExportFormat, format)
	}
}

// WriteFile encodes people to the file at path, replacing it.
func WriteFile(path, format string, people []*engine.Person, clock engine.Clock) error {
	if !slices.Contains(Formats, format) {
		return fmt.Errorf("%s: %q", config.ErrExportFormat, format)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermDefault)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	if err := Write(f, format, people, clock); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportWrite, err)
	}

	slog.Info(config.MsgExported,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyFormat, format,
		config.LogKeyFile, path,
		config.LogKeyCount, len(people),
	)
	return nil
}
