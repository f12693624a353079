// Package widget tracks the state of one terminal feed panel. The
// rendering and layout system lives elsewhere; this package holds
// only the observable state derived from feed fetches: a loading
// flag, an optional error message and a scroll cursor over the
// capture list.
package widget

import "github.com/feedtui/feedtui"

// State holds one archive-feed panel's state. A new State reports
// loading until its first Update.
type State struct {
	title   string
	items   []feedtui.Capture
	loading bool
	err     string
	cursor  int
}

// New creates panel state with the given title.
func New(title string) *State {
	return &State{title: title, loading: true}
}

// Title returns the panel title.
func (s *State) Title() string { return s.title }

// Loading reports whether a fetch is in flight.
func (s *State) Loading() bool { return s.loading }

// Err returns the current error message, or "" when the last fetch
// succeeded.
func (s *State) Err() string { return s.err }

// Items returns the current capture list.
func (s *State) Items() []feedtui.Capture { return s.items }

// Cursor returns the scroll cursor position.
func (s *State) Cursor() int { return s.cursor }

// Update applies a feed fetch result. Capture data clears any prior
// error; other payload variants are ignored.
func (s *State) Update(data feedtui.FeedData) {
	switch data.Kind {
	case feedtui.KindLoading:
		s.loading = true
	case feedtui.KindError:
		s.loading = false
		s.err = data.Err
	case feedtui.KindCaptures:
		s.loading = false
		s.err = ""
		s.items = data.Captures
		if s.cursor >= len(s.items) {
			s.cursor = max(0, len(s.items)-1)
		}
	}
}

// ScrollUp moves the cursor up one item, stopping at the top.
func (s *State) ScrollUp() {
	if s.cursor > 0 {
		s.cursor--
	}
}

// ScrollDown moves the cursor down one item, stopping at the last
// item.
func (s *State) ScrollDown() {
	if s.cursor < len(s.items)-1 {
		s.cursor++
	}
}

// Selected returns the capture under the cursor. Reports false when
// the panel is empty.
func (s *State) Selected() (feedtui.Capture, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return feedtui.Capture{}, false
	}
	return s.items[s.cursor], true
}
