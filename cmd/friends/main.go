package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-friends/internal/config"
	"github.com/tartampluch/go-friends/internal/console"
	"github.com/tartampluch/go-friends/internal/engine"
	"github.com/tartampluch/go-friends/internal/export"
	"github.com/tartampluch/go-friends/internal/store"
)

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	a := &app{}
	defer a.closeLog()

	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(a)
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// options holds the raw command-line values before they are merged into Settings.
type options struct {
	configPath string
	dataFile   string
	language   string
	debug      bool
	version    bool

	format  string
	outPath string
}

// app carries the state shared by the commands of one process.
type app struct {
	opts     options
	settings config.Settings

	// logMu guards logFile, which the interrupt bridge may close concurrently.
	logMu   sync.Mutex
	logFile io.Closer

	// exit terminates the process when an interrupt arrives during a session.
	exit func(code int)
}

func (a *app) closeLog() {
	a.logMu.Lock()
	defer a.logMu.Unlock()
	if a.logFile != nil {
		_ = a.logFile.Close() // Best effort close
		a.logFile = nil
	}
}

// newRootCmd builds the command tree. The root command runs the interactive session.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           config.CommandName,
		Short:         config.CmdShort,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.version {
				return nil
			}
			return a.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.opts.version {
				printVersion(cmd.OutOrStdout())
				return nil
			}
			return a.runSession(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.configPath, config.FlagConfig, "", config.FlagDescConfig)
	pf.StringVar(&a.opts.dataFile, config.FlagFile, config.DefaultDataFile, config.FlagDescFile)
	pf.StringVar(&a.opts.language, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	pf.BoolVar(&a.opts.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.Flags().BoolVar(&a.opts.version, config.FlagVersion, false, config.FlagDescVersion)

	exportCmd := &cobra.Command{
		Use:   config.CmdExportUse,
		Short: config.CmdExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runExport(cmd.OutOrStdout())
		},
	}
	exportCmd.Flags().StringVar(&a.opts.format, config.FlagFormat, config.FormatVCF, config.FlagDescFormat)
	exportCmd.Flags().StringVar(&a.opts.outPath, config.FlagOut, "", config.FlagDescOut)
	_ = exportCmd.MarkFlagRequired(config.FlagOut)
	root.AddCommand(exportCmd)

	return root
}

// prepare resolves the settings and starts logging.
func (a *app) prepare(cmd *cobra.Command) error {
	s, err := resolveSettings(cmd, a.opts)
	if err != nil {
		return err
	}
	a.settings = s

	a.closeLog()
	logFile := setupLogging(s.Debug)
	a.logMu.Lock()
	a.logFile = logFile
	a.logMu.Unlock()
	logStartupInfo()
	return nil
}

// resolveSettings layers explicitly set flags over the YAML file, .env and environment.
func resolveSettings(cmd *cobra.Command, opts options) (config.Settings, error) {
	path := opts.configPath
	if path == "" {
		if p, err := config.DefaultSettingsPath(); err == nil {
			path = p
		}
	}

	s, err := config.LoadSettings(path)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if flags.Changed(config.FlagFile) {
		s.DataFile = opts.dataFile
	}
	if flags.Changed(config.FlagLang) {
		s.Language = config.NormalizeLanguage(opts.language)
	}
	if flags.Changed(config.FlagDebug) {
		s.Debug = opts.debug
	}
	return s, nil
}

// runSession loads the database and hands the terminal to the menu controller.
func (a *app) runSession(ctx context.Context, in io.Reader, out io.Writer) error {
	people, err := store.Load(a.settings.DataFile)
	if err != nil {
		return err
	}

	tr := console.NewTranslator(a.settings.Language)
	ctrl := console.NewController(people, a.settings.DataFile, in, out, tr)

	// Lifecycle Bridge:
	// A prompt blocks on stdin, so an interrupt cannot wait for the loop to notice it.
	done := make(chan struct{})
	defer close(done)
	go a.watchInterrupt(ctx, done)

	return ctrl.Run(ctx)
}

// watchInterrupt ends the process without saving when ctx is cancelled mid-session.
func (a *app) watchInterrupt(ctx context.Context, done <-chan struct{}) {
	select {
	case <-done:
	case <-ctx.Done():
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		a.closeLog()
		exit := a.exit
		if exit == nil {
			exit = os.Exit
		}
		exit(config.ExitCodeInterrupted)
	}
}

// runExport writes the whole database in another format.
func (a *app) runExport(out io.Writer) error {
	people, err := store.Load(a.settings.DataFile)
	if err != nil {
		return err
	}

	if err := export.WriteFile(a.opts.outPath, a.opts.format, people, engine.RealClock{}); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, config.MsgExportDone, len(people), a.opts.outPath)
	return nil
}

// printVersion outputs the build information.
func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger.
// Stdout belongs to the menus, so logs go to a file and, in debug mode, to stderr.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if debugMode || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppID)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
