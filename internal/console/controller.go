// Package console runs the interactive, line-based menu session over the contact list.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/engine"
	"github.com/tartampluch/go-friends/internal/export"
	"github.com/tartampluch/go-friends/internal/store"
)

// ErrInputClosed is returned by Run when input ends before exit is selected.
// Nothing is saved in that case.
var ErrInputClosed = errors.New(config.ErrInputClosed)

// State is a screen of the session.
type State int

const (
	StateMainMenu State = iota
	StateCreateMenu
	StateSearch
	StateReportsMenu
	StateExit
)

var stateNames = map[State]string{
	StateMainMenu:    "main_menu",
	StateCreateMenu:  "create_menu",
	StateSearch:      "search",
	StateReportsMenu: "reports_menu",
	StateExit:        "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// action is the work attached to a transition. A nil action only moves.
type action func(c *Controller) error

type route struct {
	action action
	next   State
}

// routes maps (state, input) to (action, next state) for every menu screen.
// StateSearch is a flow, not a menu, and always returns to the main menu.
var routes = map[State]map[string]route{
	StateMainMenu: {
		config.SelCreate:  {nil, StateCreateMenu},
		config.SelSearch:  {nil, StateSearch},
		config.SelReports: {nil, StateReportsMenu},
		config.SelExit:    {(*Controller).save, StateExit},
	},
	StateCreateMenu: {
		config.SelCreateOne:  {(*Controller).createOne, StateMainMenu},
		config.SelCreateLoad: {(*Controller).loadBatch, StateMainMenu},
		"":                   {nil, StateMainMenu},
	},
	StateReportsMenu: {
		config.SelReportAlpha:    {(*Controller).reportAlpha, StateReportsMenu},
		config.SelReportBirthday: {(*Controller).reportBirthdays, StateReportsMenu},
		config.SelReportLabels:   {(*Controller).reportLabels, StateReportsMenu},
		config.SelReportBack:     {nil, StateMainMenu},
	},
}

// Next returns the state reached from state on input, and false when the input
// is not a valid selection there (the same menu is shown again).
func Next(state State, input string) (State, bool) {
	r, ok := lookup(state, input)
	return r.next, ok
}

// lookup resolves a selection. An unknown input stays on state with no action.
func lookup(state State, input string) (route, bool) {
	r, ok := routes[state][input]
	if !ok {
		return route{next: state}, false
	}
	return r, true
}

// Controller owns the in-memory contact list for one session.
type Controller struct {
	People   []*engine.Person
	DataFile string
	Clock    engine.Clock // Injected clock for testability

	// Save persists the list on exit; Import reads a file to append.
	Save   func(path string, people []*engine.Person) error
	Import func(path string) ([]*engine.Person, error)

	in    *bufio.Reader
	out   io.Writer
	tr    *Translator
	title lipgloss.Style
}

// NewController wires a session over people, reading answers from in and writing to out.
func NewController(people []*engine.Person, dataFile string, in io.Reader, out io.Writer, tr *Translator) *Controller {
	if people == nil {
		people = []*engine.Person{}
	}
	return &Controller{
		People:   people,
		DataFile: dataFile,
		Clock:    engine.RealClock{}, // Default to real clock in production
		Save:     store.Save,
		Import:   ImportFile,
		in:       bufio.NewReader(in),
		out:      out,
		tr:       tr,
		title:    lipgloss.NewRenderer(out).NewStyle().Bold(true),
	}
}

// ImportFile loads a vCard file when the extension says so, otherwise a CSV database.
func ImportFile(path string) ([]*engine.Person, error) {
	if export.IsVCardPath(path) {
		return export.LoadVCardFile(path)
	}
	return store.Load(path)
}

// Run drives the session until exit is selected. The list is saved only then;
// a save failure is returned unchanged and ends the session.
func (c *Controller) Run(ctx context.Context) error {
	log := slog.With(config.LogKeyComponent, config.CompConsole)

	state := StateMainMenu
	for state != StateExit {
		if err := ctx.Err(); err != nil {
			log.Info(config.MsgSessionAborted, config.LogKeyState, state.String())
			return err
		}

		next, err := c.Step(state)
		if err != nil {
			return err
		}
		if next != state {
			log.Debug(config.MsgStateChange,
				config.LogKeyFrom, state.String(),
				config.LogKeyTo, next.String())
		}
		state = next
	}
	return nil
}

// Step shows one screen, handles one selection and returns the next state.
func (c *Controller) Step(state State) (State, error) {
	if state == StateSearch {
		if err := c.searchFlow(); err != nil {
			return state, err
		}
		return StateMainMenu, nil
	}

	var (
		input string
		err   error
	)
	switch state {
	case StateMainMenu:
		c.heading(config.TKeyTitleMain)
		c.lines(config.TKeyMenuCreate, config.TKeyMenuSearch, config.TKeyMenuReports, config.TKeyMenuExit)
		input, err = c.prompt(config.TKeyPromptSelect)
	case StateCreateMenu:
		input, err = c.prompt(config.TKeyPromptCreate)
	case StateReportsMenu:
		c.heading(config.TKeyTitleReports)
		c.lines(config.TKeyMenuAlpha, config.TKeyMenuBirthdays, config.TKeyMenuLabels, config.TKeyMenuBack)
		input, err = c.prompt(config.TKeyPromptSelect)
	default:
		return StateExit, nil
	}
	if err != nil {
		return state, err
	}

	r, ok := lookup(state, input)
	if !ok {
		slog.Debug(config.MsgInvalidInput,
			config.LogKeyComponent, config.CompConsole,
			config.LogKeyState, state.String(),
			config.LogKeyInput, input)
		c.println(c.tr.Msg(config.TKeyInvalidSel))
		return state, nil
	}

	if r.action != nil {
		if err := r.action(c); err != nil {
			return state, err
		}
	}
	return r.next, nil
}

// -----------------------------------------------------------------------------
// Output & Input Helpers
// -----------------------------------------------------------------------------

func (c *Controller) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *Controller) heading(key string) {
	c.println("")
	c.println(c.title.Render(c.tr.Msg(key)))
}

func (c *Controller) headingText(text string) {
	c.println("")
	c.println(c.title.Render(text))
}

func (c *Controller) lines(keys ...string) {
	for _, k := range keys {
		c.println(c.tr.Msg(k))
	}
}

// prompt prints the localized prompt and returns the trimmed answer.
func (c *Controller) prompt(key string) (string, error) {
	return c.ask(c.tr.Msg(key))
}

// ask prints text and blocks until a line is read. A final line without a
// newline is still returned; input ending with nothing read is ErrInputClosed.
func (c *Controller) ask(text string) (string, error) {
	_, _ = io.WriteString(c.out, text)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%s: %w", config.ErrReadInput, err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimSpace(line), nil
}

// -----------------------------------------------------------------------------
// Exit
// -----------------------------------------------------------------------------

func (c *Controller) save() error {
	if err := c.Save(c.DataFile, c.People); err != nil {
		return fmt.Errorf("%s: %w", config.ErrSaveDatabase, err)
	}
	slog.Info(config.MsgDatabaseSaved,
		config.LogKeyComponent, config.CompConsole,
		config.LogKeyFile, c.DataFile,
		config.LogKeyCount, len(c.People))
	c.println(c.tr.Msg(config.TKeyMsgSaved))
	return nil
}
