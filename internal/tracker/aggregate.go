package tracker

import "github.com/hpungsan/caltrack/internal/activity"

// Totals is the calorie balance derived from an activity list.
// Sums are int64 so long histories cannot overflow.
type Totals struct {
	Consumed int64 `json:"consumed"`
	Burned   int64 `json:"burned"`
	Net      int64 `json:"net"`
}

// Aggregate sums food calories as consumed and exercise calories as burned.
// Activities with an unknown category count toward neither.
func Aggregate(activities []activity.Activity) Totals {
	var t Totals
	for _, a := range activities {
		switch a.Category {
		case activity.Food:
			t.Consumed += int64(a.Calories)
		case activity.Exercise:
			t.Burned += int64(a.Calories)
		}
	}
	t.Net = t.Consumed - t.Burned
	return t
}
