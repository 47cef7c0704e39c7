package activity

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// Category tags an activity as food or exercise.
// The numeric values are part of the persisted snapshot format.
type Category int

const (
	Food     Category = 1
	Exercise Category = 2
)

// Categories lists the known categories in display order.
var Categories = []Category{Food, Exercise}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case Food:
		return "Food"
	case Exercise:
		return "Exercise"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == Food || c == Exercise
}

// ParseCategory accepts "food", "exercise" (any case) or the numeric tags "1" and "2".
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "food", "1":
		return Food, nil
	case "exercise", "2":
		return Exercise, nil
	default:
		return 0, fmt.Errorf("unknown category %q (want food or exercise)", s)
	}
}

// Activity is a single food or exercise entry.
type Activity struct {
	// ID is an opaque identifier assigned at creation; never changes afterwards
	ID string `json:"id"`

	// Category selects the display color and the aggregation sign
	Category Category `json:"category"`

	// Name is the label shown in the list
	Name string `json:"name"`

	// Calories must be positive for the activity to be savable
	Calories int `json:"calories"`
}

// NewID generates a new ULID for an activity.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Draft returns an empty food entry with a fresh ID, the initial value of a new-entry form.
func Draft() (Activity, error) {
	id, err := NewID()
	if err != nil {
		return Activity{}, err
	}
	return Activity{ID: id, Category: Food}, nil
}
