package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-friends/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"DefaultDataFile", config.DefaultDataFile},
		{"DeleteConfirmation", config.DeleteConfirmation},
		{"ICalProdid", config.ICalProdid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestCalendarModel checks the fixed 365-day table that stored data depends on.
func TestCalendarModel(t *testing.T) {
	total := 0
	for _, d := range config.DaysInMonth {
		total += d
	}
	assert.Equal(t, config.DaysInYear, total)
	assert.Equal(t, 28, config.DaysInMonth[1], "February is never leap-adjusted")
}

// TestCSVFields_Order pins the database header; existing files depend on it.
func TestCSVFields_Order(t *testing.T) {
	assert.Equal(t, []string{
		"first_name", "last_name", "month", "day", "email_address", "nickname",
		"street_address", "city", "state", "zip", "phone",
	}, config.CSVFields)
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "en"},
		{"fr", "fr"},
		{"fr-CA", "fr"},
		{"de", config.DefaultLanguage},
		{"", config.DefaultLanguage},
		{"!!", config.DefaultLanguage},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, config.NormalizeLanguage(tt.in))
		})
	}
}

func TestLoadSettings_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvLanguage, "")
	t.Setenv(config.EnvDebug, "")

	s, err := config.LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
}

func TestLoadSettings_FileThenEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("data_file: /tmp/people.csv\nlanguage: fr\n"), 0o600))

	t.Setenv(config.EnvDataFile, "")
	t.Setenv(config.EnvLanguage, "")
	t.Setenv(config.EnvDebug, "true")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/people.csv", s.DataFile)
	assert.Equal(t, "fr", s.Language)
	assert.True(t, s.Debug)

	t.Setenv(config.EnvDataFile, "override.csv")
	s, err = config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "override.csv", s.DataFile, "environment wins over the settings file")
}

func TestLoadSettings_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvDataFile, "")
	// godotenv never overrides a variable that exists, even when empty.
	t.Setenv(config.EnvLanguage, "")
	require.NoError(t, os.Unsetenv(config.EnvLanguage))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.EnvFileName), []byte("FRIENDS_LANG=fr\n"), 0o600))

	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "fr", s.Language)
}

func TestLoadSettings_BadYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("data_file: [unterminated"), 0o600))

	_, err := config.LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrConfigParse)
}
