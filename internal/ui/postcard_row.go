package ui

import (
	"image/color"
	"log"
	"net/url"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/fundfeed/discovery-card/internal/presenter"
)

// FyneScheduler runs scheduled work on the Fyne UI goroutine, so presenter
// signal emissions from toggle round-trips stay on the rendering context
type FyneScheduler struct{}

// Schedule implements api.Scheduler
func (FyneScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
}

// PostcardRow renders one discovery card, bound to the presenter's outputs
type PostcardRow struct {
	widget.BaseWidget

	card     *presenter.Postcard
	gestures *CardGestureHandler

	photo         *canvas.Image
	metadataText  *canvas.Text
	nameLabel     *widget.Label
	backersTitle  *widget.Label
	backersSub    *widget.Label
	deadlineTitle *widget.Label
	deadlineSub   *widget.Label
	percentLabel  *widget.Label
	progressBar   *widget.ProgressBar
	stateIcon     *widget.Icon
	stateTitle    *canvas.Text
	stateSubtitle *widget.Label
	socialAvatar  *canvas.Image
	socialLabel   *widget.Label
	starBtn       *widget.Button
	shareBtn      *widget.Button

	statsStack        *fyne.Container
	stateStack        *fyne.Container
	socialStack       *fyne.Container
	progressContainer *fyne.Container
}

// NewPostcardRow creates a card row bound to the given presenter. The row
// subscribes to every output before the first Configure.
func NewPostcardRow(card *presenter.Postcard) *PostcardRow {
	row := &PostcardRow{card: card}
	row.ExtendBaseWidget(row)
	row.gestures = NewCardGestureHandler(row.handleGesture)
	row.createUI()
	row.bindOutputs()
	return row
}

func (row *PostcardRow) createUI() {
	row.photo = canvas.NewImageFromResource(nil)
	row.photo.FillMode = canvas.ImageFillContain
	row.photo.SetMinSize(fyne.NewSize(CardMinWidth, CardPhotoH))

	row.metadataText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	row.metadataText.TextStyle = fyne.TextStyle{Bold: true}
	row.metadataText.Hide()

	row.nameLabel = widget.NewLabel("")
	row.nameLabel.Wrapping = fyne.TextWrapWord

	row.backersTitle = widget.NewLabel("")
	row.backersTitle.TextStyle = fyne.TextStyle{Bold: true}
	row.backersSub = widget.NewLabel("")

	row.deadlineTitle = widget.NewLabel("")
	row.deadlineTitle.TextStyle = fyne.TextStyle{Bold: true}
	row.deadlineSub = widget.NewLabel("")

	row.percentLabel = widget.NewLabel("")
	row.percentLabel.TextStyle = fyne.TextStyle{Bold: true}

	row.progressBar = widget.NewProgressBar()
	row.progressBar.TextFormatter = func() string { return "" }

	row.stateIcon = widget.NewIcon(theme.ConfirmIcon())
	row.stateTitle = canvas.NewText("", presenter.TextNavy)
	row.stateTitle.TextStyle = fyne.TextStyle{Bold: true}
	row.stateSubtitle = widget.NewLabel("")

	row.socialAvatar = canvas.NewImageFromResource(nil)
	row.socialAvatar.FillMode = canvas.ImageFillContain
	row.socialAvatar.SetMinSize(fyne.NewSize(AvatarSize, AvatarSize))
	row.socialLabel = widget.NewLabel("")

	row.starBtn = widget.NewButton(IconStarEmpty, func() {
		row.card.TapStar()
	})
	row.shareBtn = widget.NewButton(IconShare, func() {
		row.card.TapShare()
	})

	row.statsStack = container.NewHBox(
		fixedWidth(StatColumnWidth, container.NewVBox(row.backersTitle, row.backersSub)),
		fixedWidth(StatColumnWidth, container.NewVBox(row.deadlineTitle, row.deadlineSub)),
		fixedWidth(StatColumnWidth, row.percentLabel),
	)
	row.stateStack = container.NewHBox(row.stateIcon, row.stateTitle, row.stateSubtitle)
	row.socialStack = container.NewHBox(row.socialAvatar, row.socialLabel)
	row.progressContainer = container.NewVBox(row.progressBar)
}

// fixedWidth pins an object's width using a transparent spacer underneath
func fixedWidth(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
	return container.NewStack(spacer, obj)
}

func (row *PostcardRow) bindOutputs() {
	card := row.card

	card.NameAndBlurb.Observe(func(text string) {
		row.nameLabel.SetText(text)
	})

	card.BackersTitle.Observe(func(text string) { row.backersTitle.SetText(text) })
	card.BackersSubtitle.Observe(func(text string) { row.backersSub.SetText(text) })
	card.DeadlineTitle.Observe(func(text string) { row.deadlineTitle.SetText(text) })
	card.DeadlineSubtitle.Observe(func(text string) { row.deadlineSub.SetText(text) })
	card.PercentFundedText.Observe(func(text string) { row.percentLabel.SetText(text) })

	card.Progress.Observe(func(ratio float64) {
		row.progressBar.SetValue(ratio)
	})

	card.ImageURL.Observe(func(u *url.URL) { loadInto(row.photo, u) })

	card.StateIconHidden.Observe(func(hidden bool) { setHidden(row.stateIcon, hidden) })
	card.StateStackHidden.Observe(func(hidden bool) { setHidden(row.stateStack, hidden) })
	card.StatsStackHidden.Observe(func(hidden bool) { setHidden(row.statsStack, hidden) })
	card.SocialStackHidden.Observe(func(hidden bool) { setHidden(row.socialStack, hidden) })
	card.ProgressBarHidden.Observe(func(hidden bool) { setHidden(row.progressBar, hidden) })
	card.ProgressContainerHidden.Observe(func(hidden bool) { setHidden(row.progressContainer, hidden) })

	card.StateTitle.Observe(func(text string) {
		row.stateTitle.Text = text
		row.stateTitle.Refresh()
	})
	card.StateTitleColor.Observe(func(c color.Color) {
		row.stateTitle.Color = c
		row.stateTitle.Refresh()
	})
	card.StateSubtitle.Observe(func(text string) { row.stateSubtitle.SetText(text) })

	card.SocialText.Observe(func(text string) { row.socialLabel.SetText(text) })
	card.SocialImageURL.Observe(func(u *url.URL) { loadInto(row.socialAvatar, u) })

	card.MetadataHidden.Observe(func(hidden bool) { setHidden(row.metadataText, hidden) })
	card.MetadataData.Observe(func(m *presenter.Metadata) {
		if m == nil {
			row.metadataText.Text = ""
		} else {
			row.metadataText.Text = m.Icon + " " + m.Label
			row.metadataText.Color = m.Color
		}
		row.metadataText.Refresh()
	})

	card.StarSelected.Observe(func(selected bool) {
		if selected {
			row.starBtn.SetText(IconStarSelected)
			row.starBtn.Importance = widget.HighImportance
		} else {
			row.starBtn.SetText(IconStarEmpty)
			row.starBtn.Importance = widget.MediumImportance
		}
		row.starBtn.Refresh()
	})
}

func setHidden(obj fyne.CanvasObject, hidden bool) {
	if hidden {
		obj.Hide()
	} else {
		obj.Show()
	}
}

// loadInto fetches an image off the UI goroutine; failures keep the
// placeholder
func loadInto(img *canvas.Image, u *url.URL) {
	if u == nil {
		img.Resource = nil
		img.Refresh()
		return
	}
	go func() {
		res, err := fyne.LoadResourceFromURLString(u.String())
		if err != nil {
			log.Printf("image load failed for %s: %v", u, err)
			return
		}
		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
}

func (row *PostcardRow) handleGesture(gesture CardGesture) {
	switch gesture {
	case CardGestureLongPress:
		row.card.TapShare()
	case CardGestureSwipeRight:
		row.card.TapStar()
	}
}

// TouchDown implements mobile.Touchable
func (row *PostcardRow) TouchDown(event *mobile.TouchEvent) {
	row.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (row *PostcardRow) TouchUp(event *mobile.TouchEvent) {
	row.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (row *PostcardRow) TouchCancel(event *mobile.TouchEvent) {
	row.gestures.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (row *PostcardRow) CreateRenderer() fyne.WidgetRenderer {
	return &postcardRowRenderer{row: row}
}

// postcardRowRenderer renders the card row widget
type postcardRowRenderer struct {
	row    *PostcardRow
	layout *fyne.Container
}

// Layout arranges the components
func (r *postcardRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < CardMinWidth {
		size.Width = CardMinWidth
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *postcardRowRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	min := r.layout.MinSize()
	if min.Width < CardMinWidth {
		min.Width = CardMinWidth
	}
	if min.Height < CardMinHeight {
		min.Height = CardMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *postcardRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *postcardRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *postcardRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *postcardRowRenderer) createLayout() {
	row := r.row

	actionRow := container.NewHBox(
		row.socialStack,
		widget.NewSeparator(),
		container.NewHBox(row.starBtn, row.shareBtn),
	)

	r.layout = container.NewVBox(
		row.metadataText,
		row.photo,
		row.nameLabel,
		row.statsStack,
		row.progressContainer,
		row.stateStack,
		actionRow,
		widget.NewSeparator(),
	)
}
