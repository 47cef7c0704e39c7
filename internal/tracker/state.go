// Package tracker holds the activity state machine and the calorie totals
// derived from it. Everything here is pure: no I/O, no clocks, no globals.
package tracker

import (
	"slices"

	"github.com/hpungsan/caltrack/internal/activity"
)

// State is an immutable snapshot of the tracker.
// Transition never mutates the Activities slice of its input.
type State struct {
	Activities []activity.Activity `json:"activities"`

	// ActiveID is the activity loaded into the edit form; empty means "create new".
	ActiveID string `json:"active_id"`
}

// NewState returns a snapshot holding a private copy of activities.
func NewState(activities []activity.Activity) State {
	return State{Activities: cloneActivities(activities)}
}

// Empty returns the state produced by RestartApp.
func Empty() State {
	return State{Activities: []activity.Activity{}}
}

// Active returns the activity currently selected for editing.
func (s State) Active() (activity.Activity, bool) {
	if s.ActiveID == "" {
		return activity.Activity{}, false
	}
	return s.Find(s.ActiveID)
}

// Find returns the activity with the given id.
func (s State) Find(id string) (activity.Activity, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return activity.Activity{}, false
	}
	return s.Activities[i], true
}

// Dangling reports whether ActiveID is set but names no activity.
// A SaveActivity dispatched in this state leaves the list untouched.
func (s State) Dangling() bool {
	if s.ActiveID == "" {
		return false
	}
	return s.indexOf(s.ActiveID) < 0
}

// CanRestart reports whether there is anything for RestartApp to discard.
func (s State) CanRestart() bool {
	return len(s.Activities) > 0
}

// Clone returns a deep copy safe to hand to readers.
func (s State) Clone() State {
	return State{Activities: cloneActivities(s.Activities), ActiveID: s.ActiveID}
}

func (s State) indexOf(id string) int {
	return slices.IndexFunc(s.Activities, func(a activity.Activity) bool { return a.ID == id })
}

// ActivitiesChanged reports whether the activity lists of two snapshots differ.
// The session persists only when this is true.
func ActivitiesChanged(prev, next State) bool {
	return !slices.Equal(prev.Activities, next.Activities)
}

func cloneActivities(in []activity.Activity) []activity.Activity {
	out := make([]activity.Activity, len(in))
	copy(out, in)
	return out
}
