package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage = "app_language"

	// Save-alert seen flags. The synced key is mirrored to the account's
	// cloud store on platforms that have one; both are persisted locally so
	// the once-only rule holds even before the first sync completes.
	KeySeenSaveAlertLocal  = "has_seen_save_alert"
	KeySeenSaveAlertSynced = "has_seen_save_alert_synced"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// BoolFlag is a persisted boolean switch
type BoolFlag interface {
	Get() bool
	Set(value bool)
}

// PreferenceFlag persists a boolean in the app preferences under a fixed key
type PreferenceFlag struct {
	prefs fyne.Preferences
	key   string
}

// NewPreferenceFlag creates a flag stored under the given preferences key
func NewPreferenceFlag(app fyne.App, key string) *PreferenceFlag {
	return &PreferenceFlag{prefs: app.Preferences(), key: key}
}

// NewLocalSaveAlertFlag returns the device-local "has seen save alert" flag
func NewLocalSaveAlertFlag(app fyne.App) *PreferenceFlag {
	return NewPreferenceFlag(app, KeySeenSaveAlertLocal)
}

// NewSyncedSaveAlertFlag returns the account-synced "has seen save alert"
// flag. TODO: mirror writes to the platform cloud key-value store once the
// account sync service ships; until then this key only syncs with OS backup.
func NewSyncedSaveAlertFlag(app fyne.App) *PreferenceFlag {
	return NewPreferenceFlag(app, KeySeenSaveAlertSynced)
}

// Get returns the flag value
func (f *PreferenceFlag) Get() bool {
	return f.prefs.Bool(f.key)
}

// Set stores the flag value
func (f *PreferenceFlag) Set(value bool) {
	f.prefs.SetBool(f.key, value)
}
