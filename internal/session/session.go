// Package session hosts the activity store for one running process: it owns
// the current snapshot, serializes dispatches and runs side effects after
// each transition.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/observability"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// Observer runs after every transition with the replaced and the new snapshot.
// Errors are logged; they never undo the transition.
type Observer func(ctx context.Context, prev, next tracker.State) error

// Session holds the current snapshot. It is safe for concurrent use; each
// Dispatch runs to completion, observers included, before the next starts.
type Session struct {
	mu        sync.Mutex
	state     tracker.State
	observers []Observer
}

// New creates a session starting from initial.
func New(initial tracker.State, observers ...Observer) *Session {
	s := &Session{state: initial.Clone(), observers: observers}
	observability.RecordSnapshot(s.state)
	return s
}

// Loader reads the persisted activity list.
type Loader interface {
	Load(ctx context.Context) ([]activity.Activity, error)
}

// Saver writes the activity list.
type Saver interface {
	Save(ctx context.Context, activities []activity.Activity) error
}

// Store is a persistence bridge that can both load and save.
type Store interface {
	Loader
	Saver
}

// Open loads the persisted snapshot and returns a session that writes every
// change back through store.
func Open(ctx context.Context, store Store) (*Session, error) {
	activities, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return New(tracker.NewState(activities), Persist(store)), nil
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() tracker.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch applies action, replaces the current snapshot, runs the observers
// and returns a copy of the new state.
func (s *Session) Dispatch(ctx context.Context, action tracker.Action) tracker.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.apply(ctx, action)
	return s.state.Clone()
}

// Plan inspects the current state and returns the actions to dispatch.
// Returning an error dispatches nothing.
type Plan func(state tracker.State) ([]tracker.Action, error)

// Batch runs plan against the current snapshot and dispatches the actions it
// returns, in order, without letting another dispatch interleave. Each action
// is a separate transition with its own observer run.
func (s *Session) Batch(ctx context.Context, plan Plan) (tracker.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	actions, err := plan(s.state.Clone())
	if err != nil {
		return s.state.Clone(), err
	}
	for _, action := range actions {
		s.apply(ctx, action)
	}
	return s.state.Clone(), nil
}

// apply runs one transition. Callers hold s.mu.
func (s *Session) apply(ctx context.Context, action tracker.Action) {
	prev := s.state
	if _, ok := action.(tracker.SaveActivity); ok && prev.Dangling() {
		// The list is left untouched and the selection cleared. Kept for
		// compatibility; surfaced here so it shows up in logs and metrics.
		log.Printf("WARNING: save dispatched for missing activity %q; list unchanged", prev.ActiveID)
		observability.RecordDanglingSave()
	}

	next := tracker.Transition(prev, action)
	s.state = next

	if action != nil {
		observability.RecordDispatch(action.Kind())
	}
	observability.RecordSnapshot(next)

	for _, observe := range s.observers {
		if err := observe(ctx, prev, next); err != nil {
			log.Printf("observer error after %T: %v", action, err)
		}
	}
}

// Persist returns an observer that writes the activity list whenever it changed.
func Persist(saver Saver) Observer {
	return func(ctx context.Context, prev, next tracker.State) error {
		if !tracker.ActivitiesChanged(prev, next) {
			return nil
		}
		if err := saver.Save(ctx, next.Activities); err != nil {
			observability.RecordSaveFailure()
			return err
		}
		observability.RecordSaved(time.Now())
		return nil
	}
}
