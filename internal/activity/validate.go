package activity

import (
	stderrors "errors"
	"strings"
)

var (
	errEmptyName           = stderrors.New("name must not be empty")
	errNonPositiveCalories = stderrors.New("calories must be greater than zero")
)

// Validate reports why an activity may not be saved, or nil if it may.
// An activity is savable iff its trimmed name is non-empty and calories > 0.
//
// The tracker reducer never calls this: callers that dispatch SaveActivity
// are responsible for gating on it.
func Validate(a Activity) error {
	if strings.TrimSpace(a.Name) == "" {
		return errEmptyName
	}
	if a.Calories <= 0 {
		return errNonPositiveCalories
	}
	return nil
}

// Valid is the boolean form of Validate, used to enable or disable submit controls.
func Valid(a Activity) bool {
	return Validate(a) == nil
}

// CleanName trims leading and trailing whitespace from a name.
func CleanName(name string) string {
	return strings.TrimSpace(name)
}
