package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("pt")
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected language pt, got %s", settings.GetLanguage())
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	if _, ok := options["en"]; !ok {
		t.Error("Language options should include English")
	}
	if _, ok := options["system"]; !ok {
		t.Error("Language options should include system default")
	}
}

func TestPreferenceFlag(t *testing.T) {
	app := test.NewApp()
	flag := NewPreferenceFlag(app, "some_flag")

	if flag.Get() {
		t.Error("Flag should default to false")
	}

	flag.Set(true)
	if !flag.Get() {
		t.Error("Flag should read back true after Set(true)")
	}

	flag.Set(false)
	if flag.Get() {
		t.Error("Flag should read back false after Set(false)")
	}
}

func TestSaveAlertFlags_IndependentKeys(t *testing.T) {
	app := test.NewApp()
	local := NewLocalSaveAlertFlag(app)
	synced := NewSyncedSaveAlertFlag(app)

	local.Set(true)
	if synced.Get() {
		t.Error("Local and synced save-alert flags must be stored independently")
	}

	synced.Set(true)
	if !local.Get() || !synced.Get() {
		t.Error("Both flags should hold their own values")
	}
}
