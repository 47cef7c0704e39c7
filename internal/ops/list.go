package ops

import (
	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// ListInput contains parameters for the List operation.
type ListInput struct {
	Category *activity.Category // optional filter
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []ActivityItem `json:"items"`
	ActiveID   string         `json:"active_id,omitempty"`
	Totals     tracker.Totals `json:"totals"`
	CanRestart bool           `json:"can_restart"`
}

// List returns the activities in insertion order. Totals always cover the
// whole list, not just the filtered items.
func List(s *session.Session, input ListInput) *ListOutput {
	state := s.Snapshot()

	items := make([]ActivityItem, 0, len(state.Activities))
	for _, a := range state.Activities {
		if input.Category != nil && a.Category != *input.Category {
			continue
		}
		items = append(items, toItem(a, state.ActiveID))
	}

	return &ListOutput{
		Items:      items,
		ActiveID:   state.ActiveID,
		Totals:     tracker.Aggregate(state.Activities),
		CanRestart: state.CanRestart(),
	}
}

// SummaryOutput contains the result of the Summary operation.
type SummaryOutput struct {
	tracker.Totals
	FoodCount     int `json:"food_count"`
	ExerciseCount int `json:"exercise_count"`
}

// Summary returns the calorie balance of the current snapshot.
func Summary(s *session.Session) *SummaryOutput {
	state := s.Snapshot()
	out := &SummaryOutput{Totals: tracker.Aggregate(state.Activities)}
	for _, a := range state.Activities {
		switch a.Category {
		case activity.Food:
			out.FoodCount++
		case activity.Exercise:
			out.ExerciseCount++
		}
	}
	return out
}

// Form returns the values the entry form should show: the selected activity
// while editing, otherwise a blank food entry.
func Form(s *session.Session) (ActivityItem, bool) {
	if a, ok := s.Snapshot().Active(); ok {
		return toItem(a, a.ID), true
	}
	return toItem(activity.Activity{Category: activity.Food}, ""), false
}
