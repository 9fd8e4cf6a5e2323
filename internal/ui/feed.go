package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/fundfeed/discovery-card/internal/feed"
	"github.com/fundfeed/discovery-card/internal/format"
	"github.com/fundfeed/discovery-card/internal/model"
	"github.com/fundfeed/discovery-card/internal/presenter"
)

// demoUser is the account the demo host logs in as
var demoUser = model.User{
	ID:   "user-demo",
	Name: "Casey",
}

// FeedUI is the main feed screen: a scrolling list of postcards with a
// session bar on top
type FeedUI struct {
	window  fyne.Window
	loc     *format.Localization
	session *DemoSession

	cards    []*presenter.Postcard
	loginBtn *widget.Button
	content  fyne.CanvasObject
}

// NewFeedUI builds the feed screen for the given page. Each project gets its
// own presenter wired from env; event outputs are routed to dialogs on window.
func NewFeedUI(window fyne.Window, loc *format.Localization, session *DemoSession, env presenter.Env, page *feed.Feed) *FeedUI {
	ui := &FeedUI{
		window:  window,
		loc:     loc,
		session: session,
	}
	ui.createUI(env, page)
	return ui
}

// Content returns the screen's root canvas object
func (ui *FeedUI) Content() fyne.CanvasObject {
	return ui.content
}

func (ui *FeedUI) createUI(env presenter.Env, page *feed.Feed) {
	title := widget.NewLabel(page.Title)
	title.TextStyle = fyne.TextStyle{Bold: true}

	ui.loginBtn = widget.NewButton(ui.loc.GetText(format.KeyLogIn), ui.toggleSession)

	topBar := container.NewBorder(nil, nil, title, ui.loginBtn)

	rows := make([]fyne.CanvasObject, 0, len(page.Projects))
	for _, project := range page.Projects {
		card := presenter.New(env)
		ui.bindCardEvents(card)

		row := NewPostcardRow(card)
		rows = append(rows, row)

		card.Configure(project)
		ui.cards = append(ui.cards, card)
	}

	list := container.NewVScroll(container.NewVBox(rows...))
	ui.content = container.NewBorder(topBar, nil, nil, nil, list)
}

// bindCardEvents routes a card's event outputs to dialogs. Subscriptions are
// set up before Configure so nothing is missed.
func (ui *FeedUI) bindCardEvents(card *presenter.Postcard) {
	card.ShareTapped.Observe(func(share presenter.ShareContext) {
		log.Printf("share requested: project=%s context=%s", share.Project.ID, share.Context)
		dialog.ShowInformation(
			ui.loc.GetText(format.KeyShare),
			fmt.Sprintf("%s\n%s", share.Project.Name, share.Project.Blurb),
			ui.window,
		)
	})

	card.ShowSaveAlert.Observe(func(struct{}) {
		dialog.ShowInformation(
			ui.loc.GetText(format.KeySaveAlertTitle),
			ui.loc.GetText(format.KeySaveAlertBody),
			ui.window,
		)
	})

	card.ShowLoginPrompt.Observe(func(struct{}) {
		dialog.ShowConfirm(
			ui.loc.GetText(format.KeyLoginPromptTitle),
			ui.loc.GetText(format.KeyLoginPromptBody),
			func(confirmed bool) {
				if confirmed && !ui.session.LoggedIn() {
					ui.logIn()
				}
			},
			ui.window,
		)
	})
}

func (ui *FeedUI) toggleSession() {
	if ui.session.LoggedIn() {
		ui.logOut()
	} else {
		ui.logIn()
	}
}

func (ui *FeedUI) logIn() {
	ui.session.LogIn(demoUser)
	ui.loginBtn.SetText(ui.loc.GetText(format.KeyLogOut))
	for _, card := range ui.cards {
		card.SessionStarted()
	}
	log.Printf("session started: user=%s", demoUser.ID)
}

func (ui *FeedUI) logOut() {
	ui.session.LogOut()
	ui.loginBtn.SetText(ui.loc.GetText(format.KeyLogIn))
	for _, card := range ui.cards {
		card.SessionEnded()
	}
	log.Printf("session ended")
}
