package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconStarSelected = "★"
	IconStarEmpty    = "☆"
	IconShare        = "📤"
	IconBackers      = "👥"
	IconClock        = "⏳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing (PostcardRow / feed)
const (
	CardMinWidth  float32 = 320
	CardMinHeight float32 = 180
	CardPhotoH    float32 = 120

	StatColumnWidth float32 = 96
	AvatarSize      float32 = 24

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 760
)

// Gesture thresholds
const (
	SwipeThreshold    float32 = 50.0
	LongPressDuration         = 500 * time.Millisecond
)

// Remote call pacing for star toggles; gives the optimistic state a beat on
// screen before the confirmation lands
const (
	StarToggleDelay = 300 * time.Millisecond
)
