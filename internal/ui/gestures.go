package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// CardGesture represents the gestures a postcard responds to
type CardGesture int

const (
	CardGestureTap CardGesture = iota
	CardGestureLongPress
	CardGestureSwipeLeft
	CardGestureSwipeRight
)

// CardGestureHandler classifies raw touch events into card gestures
type CardGestureHandler struct {
	onGesture func(CardGesture)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewCardGestureHandler creates a gesture handler with default thresholds
func NewCardGestureHandler(onGesture func(CardGesture)) *CardGestureHandler {
	return &CardGestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    SwipeThreshold,
		longPressDuration: LongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *CardGestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *CardGestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := time.Since(gh.touchStartTime)
	gh.touchStartTime = time.Time{}

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y

	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	switch {
	case absDx >= gh.swipeThreshold && absDx > absDy:
		if dx > 0 {
			gh.trigger(CardGestureSwipeRight)
		} else {
			gh.trigger(CardGestureSwipeLeft)
		}
	case duration >= gh.longPressDuration:
		gh.trigger(CardGestureLongPress)
	default:
		gh.trigger(CardGestureTap)
	}
}

// TouchCancel handles touch cancel events
func (gh *CardGestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

func (gh *CardGestureHandler) trigger(gesture CardGesture) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
