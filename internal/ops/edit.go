package ops

import (
	"context"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// SelectInput contains parameters for the Select operation.
type SelectInput struct {
	ID string // empty clears the selection
}

// SelectOutput contains the result of the Select operation.
type SelectOutput struct {
	ActiveID string        `json:"active_id"`
	Activity *ActivityItem `json:"activity,omitempty"`
}

// Select loads an activity into the edit form. An empty ID cancels editing.
func Select(ctx context.Context, s *session.Session, input SelectInput) (*SelectOutput, error) {
	var selected *ActivityItem

	_, err := s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		if input.ID == "" {
			return []tracker.Action{tracker.SetActiveID{}}, nil
		}
		a, err := findExisting(state, input.ID)
		if err != nil {
			return nil, err
		}
		item := toItem(a, a.ID)
		selected = &item
		return []tracker.Action{tracker.SetActiveID{ID: a.ID}}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SelectOutput{ActiveID: input.ID, Activity: selected}, nil
}

// EditInput contains parameters for the Edit operation.
// Nil fields keep the current value.
type EditInput struct {
	ID       string
	Category *activity.Category
	Name     *string
	Calories *int
}

// EditOutput contains the result of the Edit operation.
type EditOutput struct {
	Activity ActivityItem `json:"activity"`
}

// Edit selects an activity and saves a patched copy of it in one step,
// keeping its position in the list.
func Edit(ctx context.Context, s *session.Session, input EditInput) (*EditOutput, error) {
	var edited activity.Activity

	_, err := s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		a, err := findExisting(state, input.ID)
		if err != nil {
			return nil, err
		}
		if input.Category != nil {
			a.Category = *input.Category
		}
		if input.Name != nil {
			a.Name = activity.CleanName(*input.Name)
		}
		if input.Calories != nil {
			a.Calories = *input.Calories
		}
		if err := checkSavable(a); err != nil {
			return nil, err
		}

		edited = a
		return []tracker.Action{
			tracker.SetActiveID{ID: a.ID},
			tracker.SaveActivity{Activity: a},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	return &EditOutput{Activity: toItem(edited, "")}, nil
}
