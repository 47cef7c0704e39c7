package tracker

import "github.com/hpungsan/caltrack/internal/activity"

// Action is a transition request. The set of actions is closed: only the
// types in this file implement it.
type Action interface {
	// Kind is a stable name used for logging and metrics.
	Kind() string
	isAction()
}

// SaveActivity appends Activity, or replaces the selected activity when
// State.ActiveID is set.
type SaveActivity struct {
	Activity activity.Activity
}

// SetActiveID selects an activity for editing. The id is not checked.
type SetActiveID struct {
	ID string
}

// DeleteActivity removes the activity with ID, if present.
type DeleteActivity struct {
	ID string
}

// RestartApp discards every activity.
type RestartApp struct{}

func (SaveActivity) Kind() string   { return "save-activity" }
func (SetActiveID) Kind() string    { return "set-active-id" }
func (DeleteActivity) Kind() string { return "delete-activity" }
func (RestartApp) Kind() string     { return "restart-app" }

func (SaveActivity) isAction()   {}
func (SetActiveID) isAction()    {}
func (DeleteActivity) isAction() {}
func (RestartApp) isAction()     {}
