package ui

// Package ui contains the Fyne-based user interface for the discovery demo.
// It renders postcard rows bound to presenter outputs, hosts the feed list,
// and surfaces the card notifications (share, login prompt, save alert) as
// dialogs. All UI strings are localized via format.Localization.
