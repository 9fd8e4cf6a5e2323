package presenter

import (
	"context"
	"fmt"
	"image/color"
	"net/url"
	"strings"
	"time"

	"github.com/fundfeed/discovery-card/internal/analytics"
	"github.com/fundfeed/discovery-card/internal/api"
	"github.com/fundfeed/discovery-card/internal/cache"
	"github.com/fundfeed/discovery-card/internal/config"
	"github.com/fundfeed/discovery-card/internal/format"
	"github.com/fundfeed/discovery-card/internal/model"
	"github.com/fundfeed/discovery-card/internal/stream"
)

// SessionProvider reports the logged-in user, polled at event time
type SessionProvider interface {
	CurrentUser() (model.User, bool)
}

// DateSource supplies "today" for date-sensitive derivations
type DateSource interface {
	Today() time.Time
}

// SystemDateSource reads the wall clock
type SystemDateSource struct{}

// Today implements DateSource
func (SystemDateSource) Today() time.Time { return time.Now() }

// DiscoveryContext tags events raised from the discovery feed
const DiscoveryContext = "discovery"

// Card text colors; the app theme carries the same palette
var (
	TextGreen color.Color = color.RGBA{R: 46, G: 160, B: 67, A: 255}
	TextNavy  color.Color = color.RGBA{R: 23, G: 40, B: 77, A: 255}
)

// MetadataKind discriminates the card's flair banner variants
type MetadataKind int

const (
	// MetadataBacking marks a project the current user backs
	MetadataBacking MetadataKind = iota
	// MetadataPotd marks today's project of the day
	MetadataPotd
	// MetadataFeatured marks a project featured in its parent category today
	MetadataFeatured
)

// Metadata flair icons
const (
	IconBacking  = "✔"
	IconPotd     = "☀"
	IconFeatured = "✦"
)

// Metadata is the card's flair banner: one icon, one label, one color,
// selected by precedence, never merged
type Metadata struct {
	Kind  MetadataKind
	Icon  string
	Label string
	Color color.Color
}

// ShareContext describes a share request raised from the card
type ShareContext struct {
	Project model.Project
	Context string
}

// Env is the card's explicit dependency bundle. Every collaborator is
// injected; the component reads no globals.
type Env struct {
	Session         SessionProvider
	StarAPI         api.StarToggler
	StarCache       *cache.StarCache
	SaveAlertLocal  config.BoolFlag
	SaveAlertSynced config.BoolFlag
	Dates           DateSource
	Formatter       *format.Formatter
	Analytics       analytics.Sink
	Scheduler       api.Scheduler

	// APIDelay paces the remote toggle call (animation pacing and tests)
	APIDelay time.Duration

	// RevertOnSuccess reproduces the historical wiring where the revert
	// candidate was driven off successful responses instead of failures.
	// Leave false: failed round-trips then roll the card back.
	RevertOnSuccess bool
}

// Postcard derives everything a discovery card renders from the configured
// project and user interaction events. Inputs are methods; outputs are
// signals the hosting view subscribes to before configuring.
type Postcard struct {
	env Env

	configured   *stream.Signal[model.Project]
	toggled      *stream.Signal[model.Project]
	confirmed    *stream.Signal[model.Project]
	reverted     *stream.Signal[model.Project]
	project      *stream.Signal[model.Project]
	sessionStart *stream.Signal[struct{}]
	sessionEnd   *stream.Signal[struct{}]

	latestConfigured    *model.Project
	accumulated         *model.Project
	currentUser         *model.User
	pendingLoggedOutTap bool

	BackersTitle            *stream.Signal[string]
	BackersSubtitle         *stream.Signal[string]
	DeadlineTitle           *stream.Signal[string]
	DeadlineSubtitle        *stream.Signal[string]
	PercentFundedText       *stream.Signal[string]
	Progress                *stream.Signal[float64]
	ImageURL                *stream.Signal[*url.URL]
	NameAndBlurb            *stream.Signal[string]
	StateIconHidden         *stream.Signal[bool]
	StateStackHidden        *stream.Signal[bool]
	StateSubtitle           *stream.Signal[string]
	StateTitleColor         *stream.Signal[color.Color]
	StateTitle              *stream.Signal[string]
	StatsStackHidden        *stream.Signal[bool]
	SocialImageURL          *stream.Signal[*url.URL]
	SocialText              *stream.Signal[string]
	SocialStackHidden       *stream.Signal[bool]
	ProgressBarHidden       *stream.Signal[bool]
	ProgressContainerHidden *stream.Signal[bool]
	MetadataHidden          *stream.Signal[bool]
	MetadataData            *stream.Signal[*Metadata]
	AccessibilityLabel      *stream.Signal[string]
	AccessibilityValue      *stream.Signal[string]
	StarSelected            *stream.Signal[bool]

	ShareTapped     *stream.Signal[ShareContext]
	ShowSaveAlert   *stream.Signal[struct{}]
	ShowLoginPrompt *stream.Signal[struct{}]
}

// New creates a postcard component wired to the given dependency bundle
func New(env Env) *Postcard {
	p := &Postcard{
		env:          env,
		configured:   stream.New[model.Project](),
		toggled:      stream.New[model.Project](),
		confirmed:    stream.New[model.Project](),
		reverted:     stream.New[model.Project](),
		sessionStart: stream.New[struct{}](),
		sessionEnd:   stream.New[struct{}](),

		ShareTapped:     stream.New[ShareContext](),
		ShowSaveAlert:   stream.New[struct{}](),
		ShowLoginPrompt: stream.New[struct{}](),
	}

	// The merged project stream: fresh configurations, optimistic toggles,
	// server confirmations, and reverts. Downstream always reads the latest.
	p.project = stream.Merge(p.configured, p.toggled, p.confirmed, p.reverted)

	f := env.Formatter

	p.BackersTitle = stream.Map(p.project, func(pr model.Project) string {
		title, _ := splitComposite(f.BackersCount(pr.BackersCount))
		return title
	})
	p.BackersSubtitle = stream.Map(p.project, func(pr model.Project) string {
		_, subtitle := splitComposite(f.BackersCount(pr.BackersCount))
		return subtitle
	})

	p.DeadlineTitle = stream.Map(p.project, func(pr model.Project) string {
		if !pr.State.IsLive() {
			return ""
		}
		title, _ := f.DurationToGo(pr.Deadline, env.Dates.Today())
		return title
	})
	p.DeadlineSubtitle = stream.Map(p.project, func(pr model.Project) string {
		if !pr.State.IsLive() {
			return ""
		}
		_, subtitle := f.DurationToGo(pr.Deadline, env.Dates.Today())
		return subtitle
	})

	p.PercentFundedText = stream.Map(p.project, func(pr model.Project) string {
		if !pr.State.IsLive() {
			return ""
		}
		return f.PercentFunded(pr.PercentFunded)
	})

	p.Progress = stream.Map(p.project, func(pr model.Project) float64 {
		return pr.ClampedFundingProgress()
	})

	p.ImageURL = stream.Map(p.project, func(pr model.Project) *url.URL {
		return parseURL(pr.PhotoURL)
	})

	p.NameAndBlurb = stream.Map(p.project, func(pr model.Project) string {
		return f.NameAndBlurb(pr.Name, pr.Blurb)
	})

	p.StateIconHidden = stream.Map(p.project, func(pr model.Project) bool {
		return pr.State != model.StateSuccessful
	})

	p.StateStackHidden = stream.SkipRepeats(stream.Map(p.project, func(pr model.Project) bool {
		return pr.State.IsLive()
	}))

	p.StateSubtitle = stream.Map(p.project, func(pr model.Project) string {
		if pr.State.IsLive() {
			return ""
		}
		return f.MediumDate(pr.StateChangedAt)
	})

	p.StateTitleColor = stream.SkipRepeatsFunc(stream.Map(p.project, func(pr model.Project) color.Color {
		if pr.State == model.StateSuccessful {
			return TextGreen
		}
		return TextNavy
	}), func(a, b color.Color) bool { return a == b })

	stateTitle := stream.Map(p.project, func(pr model.Project) string {
		return f.StateTitle(pr.State)
	})
	p.StateTitle = stateTitle

	p.StatsStackHidden = stream.Map(p.StateStackHidden, func(hidden bool) bool {
		return !hidden
	})

	p.SocialImageURL = stream.Map(p.project, func(pr model.Project) *url.URL {
		if len(pr.Friends) == 0 {
			return nil
		}
		return parseURL(pr.Friends[0].AvatarURL)
	})

	p.SocialText = stream.Map(p.project, func(pr model.Project) string {
		return f.SocialBackers(friendNames(pr))
	})

	p.SocialStackHidden = stream.SkipRepeats(stream.Map(p.project, func(pr model.Project) bool {
		return len(pr.Friends) == 0
	}))

	p.ProgressBarHidden = stream.Map(p.project, func(pr model.Project) bool {
		return pr.State == model.StateFailed
	})

	p.ProgressContainerHidden = stream.Map(p.project, func(pr model.Project) bool {
		return pr.State == model.StateCanceled || pr.State == model.StateSuspended
	})

	p.MetadataHidden = stream.SkipRepeats(stream.Map(p.project, func(pr model.Project) bool {
		today := env.Dates.Today()
		return !pr.Backing() && !pr.IsPotdToday(today) && !pr.IsFeaturedToday(today)
	}))

	p.MetadataData = stream.Map(p.project, func(pr model.Project) *Metadata {
		return selectMetadata(pr, env.Dates.Today(), f)
	})

	p.AccessibilityLabel = stream.Map(p.project, func(pr model.Project) string {
		return pr.Name
	})

	// Paired, not independently sampled: blurb and state title from the same
	// project emission travel together.
	blurb := stream.Map(p.project, func(pr model.Project) string { return pr.Blurb })
	p.AccessibilityValue = stream.Zip(blurb, stateTitle, func(b, title string) string {
		return fmt.Sprintf("%s. %s", b, title)
	})

	p.StarSelected = stream.SkipRepeats(stream.Map(p.project, func(pr model.Project) bool {
		return pr.Starred()
	}))

	// Current user recomputes on session start, session end, and every
	// (re)configuration; consecutive equal values (including logged-out)
	// are deduplicated.
	sessionEvents := stream.Merge(
		stream.Map(p.configured, func(model.Project) struct{} { return struct{}{} }),
		p.sessionStart,
		p.sessionEnd,
	)
	users := stream.SkipRepeatsFunc(stream.Map(sessionEvents, func(struct{}) *model.User {
		if u, ok := env.Session.CurrentUser(); ok {
			return &u
		}
		return nil
	}), sameUser)
	users.Observe(func(u *model.User) { p.currentUser = u })

	return p
}

// Configure replaces the card's current project. The cached star override
// beats a possibly stale server value.
func (p *Postcard) Configure(project model.Project) {
	if starred, ok := p.env.StarCache.Get(project.ID); ok {
		project = project.WithStarred(starred)
	}
	p.latestConfigured = &project
	p.accumulated = nil
	p.configured.Emit(project)
}

// TapShare notifies the host that the share button was tapped
func (p *Postcard) TapShare() {
	project := p.toggleBase()
	if project == nil {
		return
	}
	p.ShareTapped.Emit(ShareContext{Project: *project, Context: DiscoveryContext})
}

// TapStar toggles the star, or asks the host for a login when logged out
func (p *Postcard) TapStar() {
	if p.currentUser == nil {
		p.pendingLoggedOutTap = true
		p.ShowLoginPrompt.Emit(struct{}{})
		return
	}
	p.toggleStar()
}

// SessionStarted reports a login. A pending logged-out star tap is replayed
// exactly once.
func (p *Postcard) SessionStarted() {
	p.sessionStart.Emit(struct{}{})
	if p.pendingLoggedOutTap && p.currentUser != nil {
		p.pendingLoggedOutTap = false
		p.toggleStar()
	}
}

// SessionEnded reports a logout
func (p *Postcard) SessionEnded() {
	p.sessionEnd.Emit(struct{}{})
}

// toggleBase is the project a toggle flips: the accumulated result of prior
// toggles when one exists, else the configured project
func (p *Postcard) toggleBase() *model.Project {
	if p.accumulated != nil {
		return p.accumulated
	}
	return p.latestConfigured
}

func (p *Postcard) toggleStar() {
	base := p.toggleBase()
	if base == nil {
		return
	}

	// Optimistic local flip, observable before the remote call resolves
	flipped := base.WithStarred(!base.Starred())
	p.accumulated = &flipped
	p.toggled.Emit(flipped)
	p.maybeShowSaveAlert(flipped)

	request := flipped
	p.env.Scheduler.Schedule(p.env.APIDelay, func() {
		confirmed, err := p.env.StarAPI.ToggleStar(context.Background(), request)
		if err != nil {
			if !p.env.RevertOnSuccess {
				p.revert(request)
			}
			return
		}

		p.env.StarCache.Set(confirmed.ID, confirmed.Starred())
		p.confirmed.Emit(confirmed)
		if confirmed.Starred() {
			p.env.Analytics.TrackProjectStar(confirmed, DiscoveryContext)
		}
		if p.env.RevertOnSuccess {
			p.revert(request)
		}
	})
}

// revert re-applies the flip to the toggled project, restoring its
// pre-toggle starred state
func (p *Postcard) revert(toggledProject model.Project) {
	restored := toggledProject.WithStarred(!toggledProject.Starred())
	p.accumulated = &restored
	p.reverted.Emit(restored)
}

// maybeShowSaveAlert fires the save reminder at most once per installation:
// only for a starred result on a project not ending within 48 hours, and
// only when neither persisted flag is set. Firing marks both flags.
func (p *Postcard) maybeShowSaveAlert(project model.Project) {
	if !project.Starred() || project.EndsIn48Hours(p.env.Dates.Today()) {
		return
	}
	if p.env.SaveAlertLocal.Get() || p.env.SaveAlertSynced.Get() {
		return
	}
	p.env.SaveAlertLocal.Set(true)
	p.env.SaveAlertSynced.Set(true)
	p.ShowSaveAlert.Emit(struct{}{})
}

func selectMetadata(pr model.Project, today time.Time, f *format.Formatter) *Metadata {
	switch {
	case pr.Backing():
		return &Metadata{Kind: MetadataBacking, Icon: IconBacking, Label: f.MetadataBacking(), Color: TextGreen}
	case pr.IsPotdToday(today):
		return &Metadata{Kind: MetadataPotd, Icon: IconPotd, Label: f.MetadataPotd(), Color: TextNavy}
	case pr.IsFeaturedToday(today):
		parent := pr.Category.ParentName()
		if parent == "" {
			return nil
		}
		return &Metadata{Kind: MetadataFeatured, Icon: IconFeatured, Label: f.MetadataFeatured(parent), Color: TextNavy}
	default:
		return nil
	}
}

func splitComposite(composite string) (string, string) {
	parts := strings.SplitN(composite, "\n", 2)
	if len(parts) < 2 {
		return composite, ""
	}
	return parts[0], parts[1]
}

func parseURL(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil
	}
	return u
}

func friendNames(pr model.Project) []string {
	if len(pr.Friends) == 0 {
		return nil
	}
	names := make([]string, 0, len(pr.Friends))
	for _, friend := range pr.Friends {
		names = append(names, friend.Name)
	}
	return names
}

func sameUser(a, b *model.User) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
