package ops

import (
	"context"
	"testing"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
)

func TestSelect_SetsAndClears(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(food("a", "Apple", 95))

	out, err := Select(ctx, s, SelectInput{ID: "a"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if out.ActiveID != "a" || out.Activity == nil || out.Activity.Name != "Apple" {
		t.Errorf("Select = %+v", out)
	}
	if item, editing := Form(s); !editing || item.ID != "a" {
		t.Errorf("Form() = %+v, %v; want editing a", item, editing)
	}

	out, err = Select(ctx, s, SelectInput{})
	if err != nil {
		t.Fatalf("Select clear failed: %v", err)
	}
	if out.Activity != nil {
		t.Error("Activity should be nil after clearing")
	}
	if s.Snapshot().ActiveID != "" {
		t.Error("ActiveID should be cleared")
	}
}

func TestSelect_UnknownID(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95))

	_, err := Select(context.Background(), s, SelectInput{ID: "missing"})
	if !errors.Is(err, errors.ErrNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
	if s.Snapshot().ActiveID != "" {
		t.Error("ActiveID should stay empty")
	}
}

func TestForm_BlankWhenNotEditing(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95))

	item, editing := Form(s)
	if editing {
		t.Error("editing should be false")
	}
	if item.Category != activity.Food || item.Name != "" || item.Calories != 0 {
		t.Errorf("Form() = %+v, want blank food entry", item)
	}
}

func TestEdit_PatchesFieldsInPlace(t *testing.T) {
	s := newTestSession(food("a", "Apple", 95), exercise("b", "Run", 300))

	name := " Sprint "
	out, err := Edit(context.Background(), s, EditInput{ID: "b", Name: &name})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if out.Activity.Name != "Sprint" || out.Activity.Calories != 300 {
		t.Errorf("Edit = %+v", out.Activity)
	}

	state := s.Snapshot()
	if state.Activities[1].Name != "Sprint" {
		t.Errorf("Activities[1] = %+v", state.Activities[1])
	}
	if state.ActiveID != "" {
		t.Error("ActiveID should be cleared after edit")
	}
}

func TestEdit_ChangeCategory(t *testing.T) {
	s := newTestSession(food("a", "Smoothie", 200))

	cat := activity.Exercise
	if _, err := Edit(context.Background(), s, EditInput{ID: "a", Category: &cat}); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if got := Summary(s); got.Burned != 200 || got.Consumed != 0 {
		t.Errorf("Summary = %+v", got.Totals)
	}
}

func TestEdit_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(food("a", "Apple", 95))

	if _, err := Edit(ctx, s, EditInput{}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty id: expected INVALID_REQUEST, got %v", err)
	}
	if _, err := Edit(ctx, s, EditInput{ID: "nope"}); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("unknown id: expected NOT_FOUND, got %v", err)
	}

	zero := 0
	if _, err := Edit(ctx, s, EditInput{ID: "a", Calories: &zero}); !errors.Is(err, errors.ErrInvalidActivity) {
		t.Errorf("zero calories: expected INVALID_ACTIVITY, got %v", err)
	}
	if got := s.Snapshot().Activities[0].Calories; got != 95 {
		t.Errorf("Calories = %d, want unchanged 95", got)
	}
}
