package counter

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReduceAddIncrementsWithoutTouchingInput(t *testing.T) {
	for _, start := range []int{-3, 0, 1, 41} {
		s := State{Count: start}
		next := Reduce(s, Add)
		if next.Count != start+1 {
			t.Fatalf("count after ADD from %d = %d", start, next.Count)
		}
		if s.Count != start {
			t.Fatalf("input state changed to %d", s.Count)
		}
	}
}

func TestReduceUnknownIsPassThrough(t *testing.T) {
	s := State{Count: 7}
	for _, a := range []Action{{}, {Kind: ActionUnknown, Tag: "RESET"}, {Kind: ActionKind(99)}} {
		if diff := cmp.Diff(s, Reduce(s, a)); diff != "" {
			t.Fatalf("unknown action %v changed state (-want +got):\n%s", a, diff)
		}
	}
}

func TestReduceUnknownTwiceKeepsCount(t *testing.T) {
	noop := Action{Tag: "SUBTRACT"}
	s := Reduce(Reduce(State{Count: 2}, noop), noop)
	require.Equal(t, 2, s.Count)
}

func TestReduceScenarios(t *testing.T) {
	require.Equal(t, State{Count: 1}, Reduce(State{Count: 0}, Add))
	require.Equal(t, State{Count: 3}, Reduce(Reduce(State{Count: 1}, Add), Add))
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("  add ")
	require.NoError(t, err)
	require.Equal(t, Add, a)
	require.Equal(t, "ADD", a.String())
}

func TestParseActionUnknownSuggests(t *testing.T) {
	a, err := ParseAction("ADDD")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownAction))

	var unknown *UnknownActionError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "ADD", unknown.Suggestion)
	require.Equal(t, ActionUnknown, a.Kind)
	require.Equal(t, "ADDD", a.String())
	require.Equal(t, State{Count: 4}, Reduce(State{Count: 4}, a))
}

func TestParseActionNoSuggestionWhenFar(t *testing.T) {
	_, err := ParseAction("TELEPORT")
	var unknown *UnknownActionError
	require.True(t, errors.As(err, &unknown))
	require.Empty(t, unknown.Suggestion)
	require.Equal(t, `unknown action "TELEPORT"`, err.Error())
}
