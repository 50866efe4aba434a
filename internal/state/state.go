// Package state tracks the wallpaper selection currently on screen.
// It lives only for the process lifetime.
package state

import (
	"time"
)

type State struct {
	Screens   int
	Selection []string
	SetAt     time.Time
	Cycles    int
}

func New() *State {
	return &State{}
}

// SetCurrent records a freshly drawn selection for screens.
func (s *State) SetCurrent(selection []string, screens int) {
	s.Selection = append([]string(nil), selection...)
	s.Screens = screens
}

// MarkApplied records a successful wallpaper tool run.
func (s *State) MarkApplied(at time.Time) {
	s.SetAt = at
	s.Cycles++
}

// HasCurrent reports whether a selection has been drawn.
func (s *State) HasCurrent() bool {
	return len(s.Selection) > 0
}

// Matches reports whether the current selection was drawn for screens.
func (s *State) Matches(screens int) bool {
	return s.HasCurrent() && s.Screens == screens
}

// Current returns a copy of the current selection.
func (s *State) Current() []string {
	return append([]string(nil), s.Selection...)
}
