package tracker

import (
	"slices"

	"github.com/hpungsan/caltrack/internal/activity"
)

// Transition computes the state that follows action. It is deterministic and
// performs no validation: a SaveActivity carrying an empty name or zero
// calories is stored as given. Unknown actions (including nil) return state
// unchanged.
func Transition(state State, action Action) State {
	switch a := action.(type) {
	case SaveActivity:
		return save(state, a.Activity)
	case SetActiveID:
		return State{Activities: state.Activities, ActiveID: a.ID}
	case DeleteActivity:
		return State{
			Activities: slices.DeleteFunc(cloneActivities(state.Activities), func(x activity.Activity) bool {
				return x.ID == a.ID
			}),
			ActiveID: state.ActiveID,
		}
	case RestartApp:
		return Empty()
	default:
		return state
	}
}

// save replaces in place when editing and appends otherwise. The selection
// is cleared in both cases, even when ActiveID matched nothing.
func save(state State, next activity.Activity) State {
	if state.ActiveID == "" {
		activities := make([]activity.Activity, 0, len(state.Activities)+1)
		activities = append(activities, state.Activities...)
		return State{Activities: append(activities, next)}
	}

	activities := cloneActivities(state.Activities)
	for i := range activities {
		if activities[i].ID == state.ActiveID {
			activities[i] = next
		}
	}
	return State{Activities: activities}
}
