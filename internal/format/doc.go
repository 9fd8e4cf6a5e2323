package format

// Package format produces the localized display strings the card renders:
// grouped backer counts, deadline countdowns, funding-state titles, social
// proof messages, and metadata flair labels. All strings are localized via
// Localization; numbers are grouped per locale with golang.org/x/text.
