package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName        = "Friends Manager"
	AppID          = "com.github.tartampluch.go-friends"
	CommandName    = "friends"
	LogFileName    = "app.log"
	ConfigFileName = "config.yaml"
	EnvFileName    = ".env"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess     = 0
	ExitCodeError       = 1
	ExitCodeInterrupted = 130 // 128 + SIGINT, as shells report it
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermDefault represents -rw-r--r--. Used for the contact database and exports.
	FilePermDefault fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion     = "version"
	FlagDebug       = "debug"
	FlagFile        = "file"
	FlagLang        = "lang"
	FlagConfig      = "config"
	FlagFormat      = "format"
	FlagOut         = "out"
	FlagDescVersion = "Show application version and exit"
	FlagDescDebug   = "Enable debug logging to stderr"
	FlagDescFile    = "Path of the contact database (CSV)"
	FlagDescLang    = "Interface language (en, fr)"
	FlagDescConfig  = "Path of the YAML settings file"
	FlagDescFormat  = "Export format: vcf, ics or xlsx"
	FlagDescOut     = "Destination file of the export"

	CmdShort       = "Manage friends, birthdays and mailing labels from the console"
	CmdExportUse   = "export"
	CmdExportShort = "Export the contact database to vCard, iCalendar or Excel"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
	MsgExportDone    = "Exported %d contact(s) to %s\n"
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvDataFile = "FRIENDS_FILE"
	EnvLanguage = "FRIENDS_LANG"
	EnvDebug    = "FRIENDS_DEBUG"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultDataFile = "friends_database.csv"
	DefaultLanguage = "en"
	UIDSalt         = "go-friends-v1-"

	// DaysInYear is the length of the simplified calendar used for birthday ranking.
	DaysInYear = 365

	// DeleteConfirmation must be typed verbatim to remove a contact.
	DeleteConfirmation = "DELETE"

	LabelSeparatorWidth = 30
	ListNameWidth       = 25
	ListBirthdayWidth   = 12
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// DaysInMonth is the fixed month-length table of the 365-day model.
// February is always 28 days.
var DaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// -----------------------------------------------------------------------------
// Contact Database Columns
// -----------------------------------------------------------------------------

const (
	ColFirstName = "first_name"
	ColLastName  = "last_name"
	ColMonth     = "month"
	ColDay       = "day"
	ColEmail     = "email_address"
	ColNickname  = "nickname"
	ColStreet    = "street_address"
	ColCity      = "city"
	ColState     = "state"
	ColZip       = "zip"
	ColPhone     = "phone"
)

// CSVFields is the header row of the contact database, in file order.
var CSVFields = []string{
	ColFirstName, ColLastName, ColMonth, ColDay,
	ColEmail, ColNickname, ColStreet, ColCity, ColState, ColZip, ColPhone,
}

// -----------------------------------------------------------------------------
// Menu Codes
// -----------------------------------------------------------------------------

const (
	SelCreate  = "1"
	SelSearch  = "2"
	SelReports = "3"
	SelExit    = "4"

	SelCreateOne  = "1"
	SelCreateLoad = "2"

	SelReportAlpha    = "3.1"
	SelReportBirthday = "3.2"
	SelReportLabels   = "3.3"
	SelReportBack     = "3.9"

	ActionEdit   = "e"
	ActionDelete = "d"
)

// -----------------------------------------------------------------------------
// Display Formats
// -----------------------------------------------------------------------------

const (
	FormatBirthday     = "%d/%d"
	FormatBirthdayList = "[ %s ]"
	FormatMatchLine    = "%d) %-*s  %-*s  %s"
	FormatUpcomingLine = "%-*s in %3d days  [%s]"
	FormatAlphaLine    = "%s, %s"
	FormatCityLine     = "%s, %s %s"
	FormatFullName     = "%s %s"
	FormatEditPrompt   = "%s [%s]: "
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyTitleMain       = "title_main"
	TKeyMenuCreate      = "menu_create"
	TKeyMenuSearch      = "menu_search"
	TKeyMenuReports     = "menu_reports"
	TKeyMenuExit        = "menu_exit"
	TKeyTitleReports    = "title_reports"
	TKeyMenuAlpha       = "menu_report_alpha"
	TKeyMenuBirthdays   = "menu_report_birthdays"
	TKeyMenuLabels      = "menu_report_labels"
	TKeyMenuBack        = "menu_report_back"
	TKeyPromptSelect    = "prompt_select"
	TKeyInvalidSel      = "msg_invalid_selection"
	TKeyPromptCreate    = "prompt_create_menu"
	TKeyTitleCreate     = "title_create"
	TKeyPromptFirst     = "prompt_first_name"
	TKeyPromptLast      = "prompt_last_name"
	TKeyPromptMonth     = "prompt_birth_month"
	TKeyPromptDay       = "prompt_birth_day"
	TKeyPromptEmail     = "prompt_email"
	TKeyPromptNickname  = "prompt_nickname"
	TKeyPromptStreet    = "prompt_street"
	TKeyPromptCity      = "prompt_city"
	TKeyPromptState     = "prompt_state"
	TKeyPromptZip       = "prompt_zip"
	TKeyPromptPhone     = "prompt_phone"
	TKeyMsgAdded        = "msg_added"
	TKeyPromptLoadPath  = "prompt_load_path"
	TKeyMsgLoaded       = "msg_loaded"    // Requires Count
	TKeyMsgLoadFailed   = "msg_load_fail" // Requires Error
	TKeyTitleSearch     = "title_search"
	TKeyPromptQuery     = "prompt_query"
	TKeyMsgNoMatches    = "msg_no_matches"
	TKeyNoBirthday      = "lbl_no_birthday"
	TKeyPromptPick      = "prompt_pick"
	TKeyMsgInvalidPick  = "msg_invalid_choice"
	TKeyPromptAction    = "prompt_action"
	TKeyPromptConfirm   = "prompt_confirm_delete" // Requires Word
	TKeyMsgDeleted      = "msg_deleted"
	TKeyMsgCancelled    = "msg_cancelled"
	TKeyTitleEdit       = "title_edit" // Requires Name
	TKeyLblFirst        = "lbl_first_name"
	TKeyLblLast         = "lbl_last_name"
	TKeyPromptEditMonth = "prompt_edit_month"
	TKeyPromptEditDay   = "prompt_edit_day"
	TKeyLblEmail        = "lbl_email"
	TKeyLblNickname     = "lbl_nickname"
	TKeyLblStreet       = "lbl_street"
	TKeyLblCity         = "lbl_city"
	TKeyLblState        = "lbl_state"
	TKeyLblZip          = "lbl_zip"
	TKeyLblPhone        = "lbl_phone"
	TKeyMsgUpdated      = "msg_updated"
	TKeyTitleAlpha      = "title_report_alpha"
	TKeyTitleBirthdays  = "title_report_birthdays"
	TKeyMsgNoBirthdays  = "msg_no_birthdays"
	TKeyTitleLabels     = "title_report_labels"
	TKeyMsgNoLabels     = "msg_no_labels"
	TKeyMsgSaved        = "msg_saved"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Friends Manager//Export//EN"
	ICalCalName   = "Friends' Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalDomain    = "gofriends"
	ICalTransp    = "TRANSPARENT"
	ICalSummary   = "Birthday: %s"
	ICalTargetYrs = 3 // previous, current and next year

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropTransp     = "TRANSP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// vCard
	VCardVersion = "4.0"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts used for vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%d@%s"

	// File Extensions & Export Formats
	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"

	FormatVCF  = "vcf"
	FormatICS  = "ics"
	FormatXLSX = "xlsx"

	// Workbook
	SheetName       = "Friends"
	DefaultSheet    = "Sheet1"
	HeaderFillColor = "#E6F3FF"
	ColumnWidth     = 18
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrOpenDatabase  = "failed to open contact database"
	ErrReadDatabase  = "failed to read contact database"
	ErrWriteDatabase = "failed to write contact database"
	ErrSaveDatabase  = "failed to save contact database"
	ErrVCardParse    = "failed to parse vCard stream"
	ErrVCardEncode   = "failed to encode vCard"
	ErrICalEncode    = "failed to encode iCalendar data"
	ErrXLSXEncode    = "failed to build workbook"
	ErrExportFormat  = "unsupported export format"
	ErrExportWrite   = "failed to write export file"
	ErrDateParse     = "unable to parse date"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrConfigRead    = "failed to read settings file"
	ErrConfigParse   = "failed to parse settings file"
	ErrInputClosed   = "input closed before exit was selected"
	ErrReadInput     = "failed to read input"
	ErrImportFile    = "failed to import contacts"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgDatabaseLoaded = "Contact database loaded"
	MsgDatabaseSaved  = "Contact database saved"
	MsgDatabaseAbsent = "Contact database not found, starting empty"
	MsgImported       = "Contacts imported"
	MsgContactAdded   = "Contact added"
	MsgContactEdited  = "Contact updated"
	MsgContactDeleted = "Contact deleted"
	MsgDeleteAborted  = "Deletion not confirmed"
	MsgStateChange    = "Menu state changed"
	MsgInvalidInput   = "Invalid menu selection"
	MsgReportRun      = "Report generated"
	MsgSessionAborted = "Session cancelled before exit"
	MsgCtxCancel      = "Interrupt received, leaving without saving"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgExported       = "Export written"
	MsgSettingsLoaded = "Settings resolved"
	MsgSettingsAbsent = "Settings file not found, using defaults"
	MsgEnvAbsent      = "No .env file found, using environment variables"
	MsgLangFallback   = "Unsupported language, falling back to default"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyTotal     = "total"
	LogKeyIndex     = "index"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyState     = "state"
	LogKeyFrom      = "from"
	LogKeyTo        = "to"
	LogKeyInput     = "input"
	LogKeyReport    = "report"
	LogKeyFormat    = "format"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompConfig  = "config"
	CompStore   = "store"
	CompExport  = "export"
	CompConsole = "console"
	CompI18n    = "i18n"
)
