package tui

import (
	"fmt"
	"strings"

	"github.com/jask/twincounter/internal/counter"
	"github.com/jask/twincounter/internal/store"
	"github.com/jask/twincounter/internal/tui/widgets"
)

// CounterHandle is the capability a scope view is built with.
type CounterHandle = store.Handle[counter.State, counter.Action]

// InnerView displays the count of the scope it was given.
type InnerView struct {
	state store.Reader[counter.State]
}

func NewInnerView(r store.Reader[counter.State]) InnerView {
	return InnerView{state: r}
}

func (v InnerView) Text() string {
	return fmt.Sprintf("Inner Counter: %d", v.state.State().Count)
}

// WrapperView renders without reading any store.
type WrapperView struct{}

func (WrapperView) Text() string { return "Wrapper" }

const addLabel = "[ ADD ]"

// ScopeView is the root component of one scope: the inner view, the wrapper
// view and the ADD control.
type ScopeView struct {
	Title   string
	Focused bool

	handle  CounterHandle
	inner   InnerView
	wrapper WrapperView
}

func NewScopeView(title string, h CounterHandle) ScopeView {
	return ScopeView{
		Title:  title,
		handle: h,
		inner:  NewInnerView(h),
	}
}

// Add is what activating the control does.
func (v ScopeView) Add() counter.State {
	return v.handle.Dispatch(counter.Add)
}

func (v ScopeView) State() counter.State { return v.handle.State() }

func (v ScopeView) Render(width, height int) string {
	button := buttonStyle.Render(addLabel)
	if v.Focused {
		button = buttonFocusStyle.Render(addLabel)
	}
	content := strings.Join([]string{
		counterStyle.Render(v.inner.Text()),
		wrapperStyle.Render(v.wrapper.Text()),
		"",
		button,
	}, "\n")
	return widgets.Pane{Title: v.Title, Content: content, Focused: v.Focused, Style: paneStyle}.Render(width, height)
}
