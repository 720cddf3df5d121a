package ui

import "time"

// statusRotateEvery is how long each ambient status message stays on screen.
const statusRotateEvery = 2 * time.Second

// searchStatusMessages is the fixed rotation shown while a search is in
// flight. Order matters: the first message appears immediately on submit and
// the list wraps after the last entry.
var searchStatusMessages = []string{
	"Searching the web for evidence...",
	"Scanning news, academic, and government sources...",
	"Reading through the top results...",
	"Weighing how each source relates to your claim...",
	"Scoring relevance...",
	"Double-checking the strongest sources...",
	"Writing up what the evidence says...",
	"Assembling your evidence cards...",
}

// statusRotator cycles the ambient status messages while a search is in
// flight. It is Stopped or Running; starting always resets to the first
// message, and a stopped rotator reports no current message.
type statusRotator struct {
	index   int
	running bool
}

// Start puts the rotator in the Running state at the first message.
func (r *statusRotator) Start() {
	r.index = 0
	r.running = true
}

// Stop halts rotation. Advance and Current become no-ops until restarted.
func (r *statusRotator) Stop() {
	r.running = false
}

// Running reports whether the rotator is active.
func (r *statusRotator) Running() bool {
	return r.running
}

// Advance moves to the next message, wrapping after the last one.
func (r *statusRotator) Advance() {
	if !r.running {
		return
	}
	r.index = (r.index + 1) % len(searchStatusMessages)
}

// Current returns the message on display, or "" when stopped.
func (r *statusRotator) Current() string {
	if !r.running {
		return ""
	}
	return searchStatusMessages[r.index]
}
