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

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.fundfeed.discovery-card")
	myApp.Settings().SetTheme(ui.NewCardTheme())

	settings := config.NewSettings(myApp)
	loc := format.NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	myWindow := myApp.NewWindow(loc.GetText(format.KeyAppTitle))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	session := &ui.DemoSession{}
	env := presenter.Env{
		Session:         session,
		StarAPI:         api.NewLocalToggler(),
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
