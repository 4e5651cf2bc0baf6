package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime options of a session.
type Settings struct {
	DataFile string `yaml:"data_file"`
	Language string `yaml:"language"`
	Debug    bool   `yaml:"debug"`
}

// DefaultSettings returns the settings used when nothing else is configured.
func DefaultSettings() Settings {
	return Settings{
		DataFile: DefaultDataFile,
		Language: DefaultLanguage,
	}
}

// DefaultSettingsPath returns the YAML settings location inside the user config dir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppID, ConfigFileName), nil
}

// LoadSettings resolves settings from defaults, the YAML file at path (optional),
// a .env file in the working directory (optional) and the environment.
// Command-line flags are applied afterwards by the caller.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		if err := s.mergeFile(path); err != nil {
			return s, err
		}
	}

	if err := godotenv.Load(EnvFileName); err != nil {
		slog.Debug(MsgEnvAbsent, LogKeyComponent, CompConfig)
	}
	s.mergeEnv()
	s.Language = NormalizeLanguage(s.Language)

	slog.Debug(MsgSettingsLoaded,
		LogKeyComponent, CompConfig,
		LogKeyFile, s.DataFile,
		LogKeyLang, s.Language,
	)
	return s, nil
}

// mergeFile overlays the non-empty values of a YAML settings file.
// A missing file is not an error.
func (s *Settings) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug(MsgSettingsAbsent, LogKeyComponent, CompConfig, LogKeyFile, path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrConfigRead, err)
	}

	var fromFile Settings
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("%s: %w", ErrConfigParse, err)
	}

	if fromFile.DataFile != "" {
		s.DataFile = fromFile.DataFile
	}
	if fromFile.Language != "" {
		s.Language = fromFile.Language
	}
	s.Debug = s.Debug || fromFile.Debug
	return nil
}

func (s *Settings) mergeEnv() {
	if v := os.Getenv(EnvDataFile); v != "" {
		s.DataFile = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		s.Language = v
	}
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Debug = b
		}
	}
}

// NormalizeLanguage reduces a language tag to one of SupportedLanguages.
// Unknown or malformed tags fall back to DefaultLanguage.
func NormalizeLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		slog.Debug(MsgLangFallback, LogKeyComponent, CompConfig, LogKeyLang, lang)
		return DefaultLanguage
	}
	base, _ := tag.Base()
	if !slices.Contains(SupportedLanguages, base.String()) {
		slog.Debug(MsgLangFallback, LogKeyComponent, CompConfig, LogKeyLang, lang)
		return DefaultLanguage
	}
	return base.String()
}
