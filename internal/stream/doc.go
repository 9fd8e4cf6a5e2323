package stream

// Package stream provides the minimal push-based signal abstraction the card
// component composes its derivations with: map, filter, merge, zip,
// take-first-n, and skip-repeats. It is deliberately not a general reactive
// framework; there is no scheduling, buffering policy, or cancellation beyond
// what the combinators themselves define.
