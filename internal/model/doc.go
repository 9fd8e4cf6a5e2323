package model

// Package model defines domain data structures used across the app: projects,
// users, categories, and the funding state enum. Structures are designed for
// direct binding in the UI and carry the date predicates the card derives
// display state from.
