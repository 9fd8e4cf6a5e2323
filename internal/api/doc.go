package api

// Package api holds the remote star service surface: the StarToggler
// interface the card depends on, a live HTTP JSON client, and the Scheduler
// pacing hook that decides where and when the remote call runs.
