package console

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
)

// optionalPrompts and optionalLabels line up with Person.OptionalFields.
var (
	optionalPrompts = []string{
		config.TKeyPromptEmail,
		config.TKeyPromptNickname,
		config.TKeyPromptStreet,
		config.TKeyPromptCity,
		config.TKeyPromptState,
		config.TKeyPromptZip,
		config.TKeyPromptPhone,
	}
	optionalLabels = []string{
		config.TKeyLblEmail,
		config.TKeyLblNickname,
		config.TKeyLblStreet,
		config.TKeyLblCity,
		config.TKeyLblState,
		config.TKeyLblZip,
		config.TKeyLblPhone,
	}
)

// -----------------------------------------------------------------------------
// Create
// -----------------------------------------------------------------------------

func (c *Controller) createOne() error {
	c.heading(config.TKeyTitleCreate)

	first, err := c.prompt(config.TKeyPromptFirst)
	if err != nil {
		return err
	}
	last, err := c.prompt(config.TKeyPromptLast)
	if err != nil {
		return err
	}
	p := engine.NewPerson(first, last)

	month, err := c.prompt(config.TKeyPromptMonth)
	if err != nil {
		return err
	}
	day, err := c.prompt(config.TKeyPromptDay)
	if err != nil {
		return err
	}
	p.Birthday = engine.ParseBirthday(month, day)

	for i, field := range p.OptionalFields() {
		val, err := c.prompt(optionalPrompts[i])
		if err != nil {
			return err
		}
		*field.Value = val
	}

	c.People = append(c.People, p)
	slog.Info(config.MsgContactAdded,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyTotal, len(c.People))
	c.println(c.tr.Msg(config.TKeyMsgAdded))
	return nil
}

// loadBatch appends every record of another file. Existing records are never replaced.
func (c *Controller) loadBatch() error {
	path, err := c.prompt(config.TKeyPromptLoadPath)
	if err != nil || path == "" {
		return err
	}

	batch, err := c.Import(path)
	if err != nil {
		slog.Warn(config.ErrImportFile,
			config.LogKeyComponent, config.CompConsole,
			config.LogKeyFile, path,
			config.LogKeyError, err)
		c.println(c.tr.MsgData(config.TKeyMsgLoadFailed, map[string]any{"Error": err}))
		return nil
	}

	c.People = append(c.People, batch...)
	slog.Info(config.MsgImported,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyFile, path,
		config.LogKeyCount, len(batch),
		config.LogKeyTotal, len(c.People))
	c.println(c.tr.MsgData(config.TKeyMsgLoaded, map[string]any{"Count": len(batch)}))
	return nil
}

// -----------------------------------------------------------------------------
// Search, Edit & Delete
// -----------------------------------------------------------------------------

func (c *Controller) searchFlow() error {
	c.heading(config.TKeyTitleSearch)

	query, err := c.prompt(config.TKeyPromptQuery)
	if err != nil {
		return err
	}
	matches := engine.FindMatches(c.People, query)
	if len(matches) == 0 {
		c.println(c.tr.Msg(config.TKeyMsgNoMatches))
		return nil
	}

	for i, m := range matches {
		c.println(fmt.Sprintf(config.FormatMatchLine,
			i+1,
			config.ListNameWidth, m.Person.FullName(),
			config.ListBirthdayWidth, c.birthdayLabel(m.Person),
			m.Person.City))
	}

	pick, err := c.prompt(config.TKeyPromptPick)
	if err != nil {
		return err
	}
	n, ok := engine.ParseDigits(pick)
	if !ok {
		return nil
	}
	if n < 1 || n > len(matches) {
		c.println(c.tr.Msg(config.TKeyMsgInvalidPick))
		return nil
	}
	selected := matches[n-1]

	act, err := c.prompt(config.TKeyPromptAction)
	if err != nil {
		return err
	}
	switch strings.ToLower(act) {
	case config.ActionEdit:
		return c.editPerson(selected.Person)
	case config.ActionDelete:
		return c.confirmDelete(selected.Index)
	}
	return nil
}

func (c *Controller) birthdayLabel(p *engine.Person) string {
	if p.Birthday == nil {
		return c.tr.Msg(config.TKeyNoBirthday)
	}
	return fmt.Sprintf(config.FormatBirthdayList, p.Birthday.String())
}

// confirmDelete removes the record at index only when the exact confirmation word is typed.
func (c *Controller) confirmDelete(index int) error {
	word, err := c.ask(c.tr.MsgData(config.TKeyPromptConfirm,
		map[string]any{"Word": config.DeleteConfirmation}))
	if err != nil {
		return err
	}
	if word != config.DeleteConfirmation {
		slog.Debug(config.MsgDeleteAborted,
			config.LogKeyComponent, config.CompConsole,
			config.LogKeyIndex, index)
		c.println(c.tr.Msg(config.TKeyMsgCancelled))
		return nil
	}

	c.People = slices.Delete(c.People, index, index+1)
	slog.Info(config.MsgContactDeleted,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyIndex, index,
		config.LogKeyTotal, len(c.People))
	c.println(c.tr.Msg(config.TKeyMsgDeleted))
	return nil
}

// editPerson updates p field by field; a blank answer keeps the current value.
// The birthday is replaced only when both new month and day are digits.
func (c *Controller) editPerson(p *engine.Person) error {
	c.headingText(c.tr.MsgData(config.TKeyTitleEdit, map[string]any{"Name": p.FullName()}))

	first, err := c.editField(config.TKeyLblFirst, p.FirstName)
	if err != nil {
		return err
	}
	last, err := c.editField(config.TKeyLblLast, p.LastName)
	if err != nil {
		return err
	}
	if first != "" {
		p.FirstName = first
	}
	if last != "" {
		p.LastName = last
	}

	month, err := c.prompt(config.TKeyPromptEditMonth)
	if err != nil {
		return err
	}
	day, err := c.prompt(config.TKeyPromptEditDay)
	if err != nil {
		return err
	}
	if b := engine.ParseBirthday(month, day); b != nil {
		p.Birthday = b
	}

	for i, field := range p.OptionalFields() {
		val, err := c.editField(optionalLabels[i], *field.Value)
		if err != nil {
			return err
		}
		if val != "" {
			*field.Value = val
		}
	}

	slog.Info(config.MsgContactEdited,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyName, p.FullName())
	c.println(c.tr.Msg(config.TKeyMsgUpdated))
	return nil
}

func (c *Controller) editField(labelKey, current string) (string, error) {
	return c.ask(fmt.Sprintf(config.FormatEditPrompt, c.tr.Msg(labelKey), current))
}

// -----------------------------------------------------------------------------
// Reports
// -----------------------------------------------------------------------------

func (c *Controller) reportAlpha() error {
	c.heading(config.TKeyTitleAlpha)
	sorted := engine.Alphabetical(c.People)
	for _, p := range sorted {
		c.println(fmt.Sprintf(config.FormatAlphaLine, p.LastName, p.FirstName))
	}
	c.logReport(config.SelReportAlpha, len(sorted))
	return nil
}

func (c *Controller) reportBirthdays() error {
	c.heading(config.TKeyTitleBirthdays)
	upcoming := engine.UpcomingBirthdays(c.People, c.Clock.Now())
	if len(upcoming) == 0 {
		c.println(c.tr.Msg(config.TKeyMsgNoBirthdays))
		return nil
	}
	for _, u := range upcoming {
		c.println(fmt.Sprintf(config.FormatUpcomingLine,
			config.ListNameWidth, u.Person.FullName(),
			u.DaysUntil,
			u.Person.Birthday.String()))
	}
	c.logReport(config.SelReportBirthday, len(upcoming))
	return nil
}

func (c *Controller) reportLabels() error {
	c.heading(config.TKeyTitleLabels)
	labels := engine.MailingLabels(c.People)
	if len(labels) == 0 {
		c.println(c.tr.Msg(config.TKeyMsgNoLabels))
		return nil
	}
	separator := strings.Repeat("-", config.LabelSeparatorWidth)
	for _, l := range labels {
		c.println(l.Name)
		c.println(l.Street)
		c.println(l.CityLine)
		c.println(separator)
	}
	c.logReport(config.SelReportLabels, len(labels))
	return nil
}

func (c *Controller) logReport(code string, rows int) {
	slog.Debug(config.MsgReportRun,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyReport, code,
		config.LogKeyCount, rows)
}
