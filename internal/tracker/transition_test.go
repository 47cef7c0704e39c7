package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpungsan/caltrack/internal/activity"
)

func banana(cal int) activity.Activity {
	return activity.Activity{ID: "a", Category: activity.Food, Name: "Banana", Calories: cal}
}

func sample() State {
	return NewState([]activity.Activity{
		{ID: "a", Category: activity.Food, Name: "Banana", Calories: 100},
		{ID: "b", Category: activity.Exercise, Name: "Run", Calories: 300},
		{ID: "c", Category: activity.Food, Name: "Salad", Calories: 250},
	})
}

// unknownAction is an Action the reducer has never heard of.
type unknownAction struct{ SaveActivity }

func (unknownAction) Kind() string { return "unknown" }

func TestSaveActivity_AppendsWhenNothingSelected(t *testing.T) {
	state := Empty()

	for i, id := range []string{"a", "b", "c"} {
		next := Transition(state, SaveActivity{Activity: activity.Activity{ID: id, Category: activity.Food, Name: id, Calories: 10}})
		require.Len(t, next.Activities, i+1)
		assert.Equal(t, id, next.Activities[len(next.Activities)-1].ID, "new entry should be last")
		assert.Empty(t, next.ActiveID)
		state = next
	}
}

func TestSaveActivity_ScenarioAddThenEdit(t *testing.T) {
	state := Transition(Empty(), SaveActivity{Activity: banana(100)})
	require.Equal(t, []activity.Activity{banana(100)}, state.Activities)
	assert.Equal(t, "", state.ActiveID)

	state = Transition(state, SetActiveID{ID: "a"})
	assert.Equal(t, "a", state.ActiveID)

	state = Transition(state, SaveActivity{Activity: banana(150)})
	require.Len(t, state.Activities, 1)
	assert.Equal(t, 150, state.Activities[0].Calories)
	assert.Equal(t, "", state.ActiveID)
}

func TestSaveActivity_EditKeepsPosition(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "b"})
	edited := activity.Activity{ID: "b", Category: activity.Exercise, Name: "Long run", Calories: 600}

	next := Transition(state, SaveActivity{Activity: edited})

	require.Len(t, next.Activities, 3)
	assert.Equal(t, "a", next.Activities[0].ID)
	assert.Equal(t, edited, next.Activities[1])
	assert.Equal(t, "c", next.Activities[2].ID)
	assert.Empty(t, next.ActiveID)
}

func TestSaveActivity_DanglingSelectionLeavesListAndClearsSelection(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "gone"})
	require.True(t, state.Dangling())

	next := Transition(state, SaveActivity{Activity: activity.Activity{ID: "z", Name: "Toast", Calories: 80, Category: activity.Food}})

	assert.Equal(t, sample().Activities, next.Activities)
	assert.Empty(t, next.ActiveID)
}

func TestSaveActivity_DoesNotValidate(t *testing.T) {
	bad := activity.Activity{ID: "x", Category: activity.Category(9), Name: "", Calories: 0}

	next := Transition(Empty(), SaveActivity{Activity: bad})

	require.Len(t, next.Activities, 1)
	assert.Equal(t, bad, next.Activities[0])
}

func TestSetActiveID_DoesNotCheckExistence(t *testing.T) {
	next := Transition(sample(), SetActiveID{ID: "missing"})
	assert.Equal(t, "missing", next.ActiveID)
	assert.Equal(t, sample().Activities, next.Activities)
}

func TestDeleteActivity(t *testing.T) {
	next := Transition(sample(), DeleteActivity{ID: "b"})

	require.Len(t, next.Activities, 2)
	_, found := next.Find("b")
	assert.False(t, found)
	assert.Equal(t, "a", next.Activities[0].ID)
	assert.Equal(t, "c", next.Activities[1].ID)
}

func TestDeleteActivity_MissingIDIsNoOp(t *testing.T) {
	state := sample()
	next := Transition(state, DeleteActivity{ID: "missing-id"})
	assert.Equal(t, state.Activities, next.Activities)

	again := Transition(next, DeleteActivity{ID: "missing-id"})
	assert.Equal(t, next, again)
}

func TestDeleteActivity_KeepsSelection(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "a"})
	next := Transition(state, DeleteActivity{ID: "a"})
	assert.Equal(t, "a", next.ActiveID)
	assert.True(t, next.Dangling())
}

func TestRestartApp_Idempotent(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "a"})

	once := Transition(state, RestartApp{})
	twice := Transition(once, RestartApp{})

	assert.Equal(t, Empty(), once)
	assert.Equal(t, once, twice)
	assert.False(t, once.CanRestart())
}

func TestUnknownActionIsIdentity(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "c"})

	assert.Equal(t, state, Transition(state, unknownAction{}))
	assert.Equal(t, state, Transition(state, nil))
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	state := Transition(sample(), SetActiveID{ID: "a"})
	before := state.Clone()

	_ = Transition(state, SaveActivity{Activity: banana(999)})
	_ = Transition(state, DeleteActivity{ID: "b"})
	_ = Transition(state, RestartApp{})

	assert.Equal(t, before, state)
}

func TestAppendDoesNotAliasPreviousSnapshot(t *testing.T) {
	base := State{Activities: make([]activity.Activity, 1, 8)}
	base.Activities[0] = banana(100)

	first := Transition(base, SaveActivity{Activity: activity.Activity{ID: "x"}})
	second := Transition(base, SaveActivity{Activity: activity.Activity{ID: "y"}})

	assert.Equal(t, "x", first.Activities[1].ID)
	assert.Equal(t, "y", second.Activities[1].ID)
}

func TestActive(t *testing.T) {
	_, ok := sample().Active()
	assert.False(t, ok)

	a, ok := Transition(sample(), SetActiveID{ID: "c"}).Active()
	require.True(t, ok)
	assert.Equal(t, "Salad", a.Name)

	_, ok = Transition(sample(), SetActiveID{ID: "nope"}).Active()
	assert.False(t, ok)
}

func TestActivitiesChanged(t *testing.T) {
	state := sample()

	assert.False(t, ActivitiesChanged(state, Transition(state, SetActiveID{ID: "a"})))
	assert.False(t, ActivitiesChanged(state, Transition(state, DeleteActivity{ID: "missing"})))
	assert.True(t, ActivitiesChanged(state, Transition(state, DeleteActivity{ID: "a"})))
	assert.True(t, ActivitiesChanged(state, Transition(state, RestartApp{})))
	assert.False(t, ActivitiesChanged(Empty(), Transition(Empty(), RestartApp{})))
}

func TestActionKinds(t *testing.T) {
	assert.Equal(t, "save-activity", SaveActivity{}.Kind())
	assert.Equal(t, "set-active-id", SetActiveID{}.Kind())
	assert.Equal(t, "delete-activity", DeleteActivity{}.Kind())
	assert.Equal(t, "restart-app", RestartApp{}.Kind())
}
