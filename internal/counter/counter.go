// Package counter holds the counter state, its actions and the reducer that
// combines them.
package counter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap/zapcore"
)

// State is one immutable snapshot of a counter.
type State struct {
	Count int
}

func (s State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("count", s.Count)
	return nil
}

// ActionKind enumerates the actions a counter understands. The zero value is
// ActionUnknown.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionAdd
)

var kindTags = map[ActionKind]string{
	ActionAdd: "ADD",
}

func (k ActionKind) String() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return "UNKNOWN"
}

// Action is a request to change a counter. Tag keeps the raw text an unknown
// action was parsed from.
type Action struct {
	Kind ActionKind
	Tag  string
}

// Add is the ADD action.
var Add = Action{Kind: ActionAdd}

func (a Action) String() string {
	if a.Kind == ActionUnknown && a.Tag != "" {
		return a.Tag
	}
	return a.Kind.String()
}

func (a Action) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("type", a.Kind.String())
	if a.Tag != "" {
		enc.AddString("tag", a.Tag)
	}
	return nil
}

// Reduce returns the state that results from applying a to s. Actions it does
// not recognise leave the state as it was.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActionAdd:
		next := s
		next.Count++
		return next
	default:
		return s
	}
}

var ErrUnknownAction = errors.New("unknown action")

// UnknownActionError reports a tag that does not name an action kind.
type UnknownActionError struct {
	Tag        string
	Suggestion string
}

func (e *UnknownActionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown action %q (did you mean %q?)", e.Tag, e.Suggestion)
	}
	return fmt.Sprintf("unknown action %q", e.Tag)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// maxSuggestDistance bounds how far a typo may be from a known tag.
const maxSuggestDistance = 2

// ParseAction maps a tag such as "ADD" or " add " to an Action. Unrecognised
// tags yield an ActionUnknown action carrying the tag, together with an
// *UnknownActionError; the action is still safe to dispatch.
func ParseAction(tag string) (Action, error) {
	norm := strings.ToUpper(strings.TrimSpace(tag))
	for kind, known := range kindTags {
		if known == norm {
			return Action{Kind: kind}, nil
		}
	}
	return Action{Kind: ActionUnknown, Tag: tag}, &UnknownActionError{Tag: tag, Suggestion: suggest(norm)}
}

func suggest(norm string) string {
	if norm == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, known := range kindTags {
		if d := levenshtein.ComputeDistance(norm, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}
