package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/fundfeed/discovery-card/internal/analytics"
	"github.com/fundfeed/discovery-card/internal/api"
	"github.com/fundfeed/discovery-card/internal/cache"
	"github.com/fundfeed/discovery-card/internal/config"
	"github.com/fundfeed/discovery-card/internal/feed"
	"github.com/fundfeed/discovery-card/internal/format"
	"github.com/fundfeed/discovery-card/internal/presenter"
	"github.com/fundfeed/discovery-card/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.fundfeed.discovery-card"
	AppName = "Discovery"
)

func main() {
	// Log version information
	fmt.Printf("Discovery Card v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCardTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	loc := format.NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	// Remote toggles only when a backend is configured; otherwise the demo
	// resolves them in process
	var starAPI api.StarToggler = api.NewLocalToggler()
	if baseURL := os.Getenv("FUNDFEED_API_URL"); baseURL != "" {
		starAPI = api.NewClient(baseURL)
	}

	session := &ui.DemoSession{}
	env := presenter.Env{
		Session:         session,
		StarAPI:         starAPI,
		StarCache:       cache.NewStarCache(),
		SaveAlertLocal:  config.NewLocalSaveAlertFlag(myApp),
		SaveAlertSynced: config.NewSyncedSaveAlertFlag(myApp),
		Dates:           presenter.SystemDateSource{},
		Formatter:       format.NewFormatter(loc),
		Analytics:       analytics.LogSink{},
		Scheduler:       ui.FyneScheduler{},
		APIDelay:        ui.StarToggleDelay,
	}

	page, err := feed.Sample()
	if err != nil {
		fmt.Printf("failed to load sample feed: %v\n", err)
		os.Exit(1)
	}

	// Create and setup UI
	feedUI := ui.NewFeedUI(myWindow, loc, session, env, page)
	myWindow.SetContent(feedUI.Content())

	// Show and run
	myWindow.ShowAndRun()
}
