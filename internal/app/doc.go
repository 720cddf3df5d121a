// Package app provides the orchestration layer for the sleuth application.
//
// Run is the composition root: it loads configuration and user preferences,
// builds the Evidence Finder API client with the configured base address,
// creates the shared session store and filter set, redirects the standard
// logger to a file (a TUI owns the terminal), and starts the UI, blocking
// until the user exits or the context is cancelled.
//
// Fatal errors are limited to an unreadable config file and an invalid API
// base address. Everything after startup — unreachable API, failed catalog
// fetch, failed searches — is recoverable and surfaced (or deliberately not
// surfaced) by the UI layer per the session's error rules.
package app
