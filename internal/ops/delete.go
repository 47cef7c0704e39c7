package ops

import (
	"context"

	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// Delete removes an activity. Deleting an unknown id succeeds with Deleted=false.
func Delete(ctx context.Context, s *session.Session, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	existed := false
	_, err := s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		_, existed = state.Find(input.ID)
		return []tracker.Action{tracker.DeleteActivity{ID: input.ID}}, nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{Deleted: existed, ID: input.ID}, nil
}

// RestartOutput contains the result of the Restart operation.
type RestartOutput struct {
	Discarded int `json:"discarded"`
}

// Restart discards every activity and the current selection.
func Restart(ctx context.Context, s *session.Session) (*RestartOutput, error) {
	discarded := 0
	_, err := s.Batch(ctx, func(state tracker.State) ([]tracker.Action, error) {
		discarded = len(state.Activities)
		return []tracker.Action{tracker.RestartApp{}}, nil
	})
	if err != nil {
		return nil, err
	}
	return &RestartOutput{Discarded: discarded}, nil
}
