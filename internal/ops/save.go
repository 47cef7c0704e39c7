package ops

import (
	"context"
	"fmt"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// SaveInput is a submitted activity form.
type SaveInput struct {
	ID       string // optional for new entries; ignored while an activity is selected
	Category activity.Category
	Name     string
	Calories int
}

// SaveOutput contains the result of the Save operation.
type SaveOutput struct {
	Activity ActivityItem `json:"activity"`
	Created  bool         `json:"created"`

	// Dropped is set when the selected activity had already been deleted:
	// the selection is cleared and the list is left as it was.
	Dropped bool `json:"dropped,omitempty"`
}

// Save submits the form. With an activity selected it replaces that activity
// in place; otherwise it appends a new one. The selection is cleared either way.
func Save(ctx context.Context, s *session.Session, input SaveInput) (*SaveOutput, error) {
	var saved activity.Activity
	created, dropped := false, false

	_, err := s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		a := activity.Activity{
			ID:       input.ID,
			Category: input.Category,
			Name:     activity.CleanName(input.Name),
			Calories: input.Calories,
		}
		if err := checkSavable(a); err != nil {
			return nil, err
		}

		if state.ActiveID != "" {
			a.ID = state.ActiveID
			dropped = state.Dangling()
		} else {
			if a.ID == "" {
				id, err := activity.NewID()
				if err != nil {
					return nil, errors.NewInternal(err)
				}
				a.ID = id
			} else if _, exists := state.Find(a.ID); exists {
				return nil, errors.NewInvalidRequest(fmt.Sprintf("activity %s already exists; select it to edit", a.ID))
			}
			created = true
		}

		saved = a
		return []tracker.Action{tracker.SaveActivity{Activity: a}}, nil
	})
	if err != nil {
		return nil, err
	}

	return &SaveOutput{Activity: toItem(saved, ""), Created: created, Dropped: dropped}, nil
}
