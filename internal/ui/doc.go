// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a guarded multi-view client:
//  1. [LoginView] : Sign in with a username or email identifier
//  2. [FeedView] : Browse the video catalog
//  3. [ProfileView] : Inspect the signed-in account
//
// Every view declares a visibility class and the guard re-evaluates it on
// each session snapshot, so a forced logout lands on the login view without
// any view opting in. Session snapshots, redirects, and transient notices
// arrive over channels and are surfaced as bubbletea messages.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
