package console_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-friends/internal/config"
)

func loadLocale(t *testing.T, lang string) map[string]any {
	t.Helper()

	name := "active." + lang + ".json"
	path := filepath.Join("locales", name)
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// Fallback for running tests from the module root
		path = filepath.Join("internal", "console", "locales", name)
		content, err = os.ReadFile(path)
	}
	require.NoErrorf(t, err, "Must load %s", name)

	var jsonMap map[string]any
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")
	return jsonMap
}

// TestI18nIntegrity ensures that every translation key defined in config.go
// exists in each locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyTitleMain,
		config.TKeyMenuCreate,
		config.TKeyMenuSearch,
		config.TKeyMenuReports,
		config.TKeyMenuExit,
		config.TKeyTitleReports,
		config.TKeyMenuAlpha,
		config.TKeyMenuBirthdays,
		config.TKeyMenuLabels,
		config.TKeyMenuBack,
		config.TKeyPromptSelect,
		config.TKeyInvalidSel,
		config.TKeyPromptCreate,
		config.TKeyTitleCreate,
		config.TKeyPromptFirst,
		config.TKeyPromptLast,
		config.TKeyPromptMonth,
		config.TKeyPromptDay,
		config.TKeyPromptEmail,
		config.TKeyPromptNickname,
		config.TKeyPromptStreet,
		config.TKeyPromptCity,
		config.TKeyPromptState,
		config.TKeyPromptZip,
		config.TKeyPromptPhone,
		config.TKeyMsgAdded,
		config.TKeyPromptLoadPath,
		config.TKeyMsgLoaded,
		config.TKeyMsgLoadFailed,
		config.TKeyTitleSearch,
		config.TKeyPromptQuery,
		config.TKeyMsgNoMatches,
		config.TKeyNoBirthday,
		config.TKeyPromptPick,
		config.TKeyMsgInvalidPick,
		config.TKeyPromptAction,
		config.TKeyPromptConfirm,
		config.TKeyMsgDeleted,
		config.TKeyMsgCancelled,
		config.TKeyTitleEdit,
		config.TKeyLblFirst,
		config.TKeyLblLast,
		config.TKeyPromptEditMonth,
		config.TKeyPromptEditDay,
		config.TKeyLblEmail,
		config.TKeyLblNickname,
		config.TKeyLblStreet,
		config.TKeyLblCity,
		config.TKeyLblState,
		config.TKeyLblZip,
		config.TKeyLblPhone,
		config.TKeyMsgUpdated,
		config.TKeyTitleAlpha,
		config.TKeyTitleBirthdays,
		config.TKeyMsgNoBirthdays,
		config.TKeyTitleLabels,
		config.TKeyMsgNoLabels,
		config.TKeyMsgSaved,
	}

	definedKeys := make(map[string]bool, len(keysToCheck))
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			jsonMap := loadLocale(t, lang)

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.%s.json", key, lang)
			}

			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in active.%s.json but has no constant (might be unused)", jsonKey, lang)
				}
			}
		})
	}
}

// TestI18nTemplates checks that templated messages keep their placeholders in every language.
func TestI18nTemplates(t *testing.T) {
	placeholders := map[string]string{
		config.TKeyMsgLoaded:     "{{.Count}}",
		config.TKeyMsgLoadFailed: "{{.Error}}",
		config.TKeyPromptConfirm: "{{.Word}}",
		config.TKeyTitleEdit:     "{{.Name}}",
	}

	for _, lang := range config.SupportedLanguages {
		jsonMap := loadLocale(t, lang)
		for key, placeholder := range placeholders {
			msg, ok := jsonMap[key].(string)
			require.Truef(t, ok, "%s must be a string in %s", key, lang)
			assert.Containsf(t, msg, placeholder, "%s in %s", key, lang)
		}
	}
}
