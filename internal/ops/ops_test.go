package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/session"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// newTestSession returns a session seeded with activities and no persistence.
func newTestSession(activities ...activity.Activity) *session.Session {
	return session.New(tracker.NewState(activities))
}

func food(id, name string, calories int) activity.Activity {
	return activity.Activity{ID: id, Category: activity.Food, Name: name, Calories: calories}
}

func exercise(id, name string, calories int) activity.Activity {
	return activity.Activity{ID: id, Category: activity.Exercise, Name: name, Calories: calories}
}

func TestCheckSavable(t *testing.T) {
	tests := []struct {
		name string
		a    activity.Activity
		ok   bool
	}{
		{"food", food("a", "Apple", 95), true},
		{"exercise", exercise("b", "Run", 300), true},
		{"unknown category", activity.Activity{Category: 3, Name: "x", Calories: 1}, false},
		{"zero category", activity.Activity{Name: "x", Calories: 1}, false},
		{"blank name", food("c", "   ", 10), false},
		{"zero calories", food("d", "Water", 0), false},
		{"negative calories", food("e", "Tea", -5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkSavable(tc.a)
			if tc.ok && err != nil {
				t.Fatalf("checkSavable() = %v, want nil", err)
			}
			if !tc.ok && !errors.Is(err, errors.ErrInvalidActivity) {
				t.Fatalf("checkSavable() = %v, want INVALID_ACTIVITY", err)
			}
		})
	}
}

func TestToItem(t *testing.T) {
	item := toItem(exercise("r1", "Run", 300), "r1")
	if item.CategoryName != "Exercise" {
		t.Errorf("CategoryName = %q, want Exercise", item.CategoryName)
	}
	if !item.Active {
		t.Error("Active should be true when id matches activeID")
	}

	if toItem(food("a", "Apple", 95), "").Active {
		t.Error("Active should be false with no selection")
	}
}

func TestWorkflow_AddEditDeleteRestart(t *testing.T) {
	ctx := context.Background()
	s := newTestSession()

	apple, err := Save(ctx, s, SaveInput{Category: activity.Food, Name: "Apple", Calories: 95})
	if err != nil {
		t.Fatalf("Save apple: %v", err)
	}
	run, err := Save(ctx, s, SaveInput{Category: activity.Exercise, Name: "Run", Calories: 300})
	if err != nil {
		t.Fatalf("Save run: %v", err)
	}

	calories := 120
	if _, err := Edit(ctx, s, EditInput{ID: apple.Activity.ID, Calories: &calories}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	sum := Summary(s)
	if sum.Consumed != 120 || sum.Burned != 300 || sum.Net != -180 {
		t.Errorf("Summary = %+v, want consumed 120, burned 300, net -180", sum.Totals)
	}

	if _, err := Delete(ctx, s, DeleteInput{ID: run.Activity.ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := List(s, ListInput{}); len(got.Items) != 1 || got.Items[0].Name != "Apple" {
		t.Fatalf("List after delete = %+v", got.Items)
	}

	out, err := Restart(ctx, s)
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if out.Discarded != 1 {
		t.Errorf("Discarded = %d, want 1", out.Discarded)
	}
	if List(s, ListInput{}).CanRestart {
		t.Error("CanRestart should be false after restart")
	}
}
