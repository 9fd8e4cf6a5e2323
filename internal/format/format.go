package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/message"

	"github.com/fundfeed/discovery-card/internal/model"
)

// Formatter produces localized display strings for the card. All methods are
// pure with respect to the formatter's language.
type Formatter struct {
	loc     *Localization
	printer *message.Printer
}

// NewFormatter creates a formatter for the localization's current language
func NewFormatter(loc *Localization) *Formatter {
	return &Formatter{
		loc:     loc,
		printer: message.NewPrinter(loc.LanguageTag()),
	}
}

// BackersCount returns the backers composite string with an embedded line
// break, e.g. "1,200\nbackers". The count is grouped per locale.
func (f *Formatter) BackersCount(count int) string {
	return f.printer.Sprintf(f.loc.GetText(KeyBackersComposite), count)
}

// DurationToGo returns the countdown value and its "to go" subtitle for a
// deadline, e.g. ("24", "days to go"). An expired deadline yields zero mins.
func (f *Formatter) DurationToGo(deadline, today time.Time) (string, string) {
	remaining := deadline.Sub(today)
	if remaining < 0 {
		remaining = 0
	}

	var value int
	var unitKey string
	switch {
	case remaining >= 24*time.Hour:
		value = int(math.Ceil(remaining.Hours() / 24))
		unitKey = KeyUnitDays
		if value == 1 {
			unitKey = KeyUnitDay
		}
	case remaining >= time.Hour:
		value = int(math.Ceil(remaining.Hours()))
		unitKey = KeyUnitHours
		if value == 1 {
			unitKey = KeyUnitHour
		}
	default:
		value = int(math.Ceil(remaining.Minutes()))
		unitKey = KeyUnitMins
		if value == 1 {
			unitKey = KeyUnitMin
		}
	}

	title := f.printer.Sprintf("%d", value)
	subtitle := fmt.Sprintf(f.loc.GetText(KeyToGo), f.loc.GetText(unitKey))
	return title, subtitle
}

// PercentFunded returns the percent-funded label, e.g. "137%"
func (f *Formatter) PercentFunded(percent int) string {
	return f.printer.Sprintf("%d%%", percent)
}

// MediumDate formats a date in medium style, e.g. "Mar 14, 2026"
func (f *Formatter) MediumDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// NameAndBlurb composes the card's main text block
func (f *Formatter) NameAndBlurb(name, blurb string) string {
	if blurb == "" {
		return name
	}
	return name + ": " + blurb
}

// StateTitle returns the display title for a funding state. Live and
// pre-launch states have no title.
func (f *Formatter) StateTitle(state model.ProjectState) string {
	switch state {
	case model.StateSuccessful:
		return f.loc.GetText(KeyStateSuccessful)
	case model.StateFailed:
		return f.loc.GetText(KeyStateFailed)
	case model.StateCanceled:
		return f.loc.GetText(KeyStateCanceled)
	case model.StateSuspended:
		return f.loc.GetText(KeyStateSuspended)
	default:
		return ""
	}
}

// SocialBackers returns the friends-are-backers message for the given friend
// names, or "" when there are none.
//
// 1 friend:  "{name} is a backer"
// 2 friends: "{a} and {b} are backers"
// 3+:        "{a}, {b}, and {n} others are backers"
func (f *Formatter) SocialBackers(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(f.loc.GetText(KeySocialOne), names[0])
	case 2:
		return fmt.Sprintf(f.loc.GetText(KeySocialTwo), names[0], names[1])
	default:
		others := len(names) - 2
		if others < 0 {
			others = 0
		}
		return f.printer.Sprintf(f.loc.GetText(KeySocialMany), names[0], names[1], others)
	}
}

// MetadataBacking returns the "you're a backer" flair label
func (f *Formatter) MetadataBacking() string {
	return f.loc.GetText(KeyMetadataBacking)
}

// MetadataPotd returns the project-of-the-day flair label
func (f *Formatter) MetadataPotd() string {
	return f.loc.GetText(KeyMetadataPotd)
}

// MetadataFeatured returns the featured flair label for a parent category
func (f *Formatter) MetadataFeatured(parentCategory string) string {
	return fmt.Sprintf(f.loc.GetText(KeyMetadataFeatured), parentCategory)
}
