package ops

import (
	"fmt"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/errors"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// ActivityItem is an activity as presented to callers.
type ActivityItem struct {
	ID           string            `json:"id"`
	Category     activity.Category `json:"category"`
	CategoryName string            `json:"category_name"`
	Name         string            `json:"name"`
	Calories     int               `json:"calories"`
	Active       bool              `json:"active,omitempty"`
}

// toItem converts an activity for output, marking it if it is the active one.
func toItem(a activity.Activity, activeID string) ActivityItem {
	return ActivityItem{
		ID:           a.ID,
		Category:     a.Category,
		CategoryName: a.Category.String(),
		Name:         a.Name,
		Calories:     a.Calories,
		Active:       activeID != "" && a.ID == activeID,
	}
}

// checkSavable applies the form rules: known category, non-empty name, positive calories.
// The tracker accepts anything, so every surface goes through here first.
func checkSavable(a activity.Activity) error {
	if !a.Category.Valid() {
		return errors.NewInvalidActivity(fmt.Sprintf("category must be %d (food) or %d (exercise)", activity.Food, activity.Exercise))
	}
	if err := activity.Validate(a); err != nil {
		return errors.NewInvalidActivity(err.Error())
	}
	return nil
}

// findExisting returns the activity with id, or NOT_FOUND.
func findExisting(state tracker.State, id string) (activity.Activity, error) {
	if id == "" {
		return activity.Activity{}, errors.NewInvalidRequest("id is required")
	}
	a, ok := state.Find(id)
	if !ok {
		return activity.Activity{}, errors.NewNotFound(id)
	}
	return a, nil
}
