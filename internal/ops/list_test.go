package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/caltrack/internal/activity"
)

func TestList_InsertionOrderAndTotals(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95), exercise("b", "Run", 300), food("c", "Toast", 80))

	out := List(s, ListInput{})
	if len(out.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(out.Items))
	}
	for i, id := range []string{"a", "b", "c"} {
		if out.Items[i].ID != id {
			t.Errorf("Items[%d].ID = %q, want %q", i, out.Items[i].ID, id)
		}
	}
	if out.Totals.Consumed != 175 || out.Totals.Burned != 300 || out.Totals.Net != -125 {
		t.Errorf("Totals = %+v", out.Totals)
	}
	if !out.CanRestart {
		t.Error("CanRestart should be true")
	}
}

func TestList_CategoryFilterKeepsFullTotals(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95), exercise("b", "Run", 300))

	cat := activity.Exercise
	out := List(s, ListInput{Category: &cat})
	if len(out.Items) != 1 || out.Items[0].ID != "b" {
		t.Fatalf("Items = %+v", out.Items)
	}
	if out.Totals.Consumed != 95 {
		t.Errorf("Totals.Consumed = %d, want 95", out.Totals.Consumed)
	}
}

func TestList_MarksActive(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(food("a", "Apple", 95), food("b", "Toast", 80))
	if _, err := Select(ctx, s, SelectInput{ID: "b"}); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	out := List(s, ListInput{})
	if out.ActiveID != "b" {
		t.Errorf("ActiveID = %q, want b", out.ActiveID)
	}
	if out.Items[0].Active || !out.Items[1].Active {
		t.Errorf("Active flags = %v, %v", out.Items[0].Active, out.Items[1].Active)
	}
}

func TestList_Empty(t *testing.T) {
	out := List(newTestSession(), ListInput{})
	if out.Items == nil || len(out.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", out.Items)
	}
	if out.CanRestart {
		t.Error("CanRestart should be false on an empty list")
	}
}

func TestSummary_Counts(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95), exercise("b", "Run", 300), food("c", "Toast", 80))

	out := Summary(s)
	if out.FoodCount != 2 || out.ExerciseCount != 1 {
		t.Errorf("counts = %d food, %d exercise", out.FoodCount, out.ExerciseCount)
	}
	if out.Net != -125 {
		t.Errorf("Net = %d, want -125", out.Net)
	}
}
