// Copyright (c) 2026 - The Bloc authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mocks provides mocked implementations of the bloc interfaces,
// useful in testing.
package mocks

import (
	"context"
	"testing"
	"time"

	"github.com/looplab/bloc"
)

const (
	// EventType is the type for Event.
	EventType bloc.EventType = "Event"
	// EventOtherType is the type for EventOther.
	EventOtherType bloc.EventType = "EventOther"
)

// Event is a mocked bloc.Event, useful in testing.
type Event struct {
	Content string
}

var _ = bloc.Event(Event{})

// EventType implements the EventType method of the bloc.Event interface.
func (e Event) EventType() bloc.EventType {
	return EventType
}

// EventOther is a second mocked bloc.Event, useful in testing.
type EventOther struct {
	Content string
}

var _ = bloc.Event(EventOther{})

// EventType implements the EventType method of the bloc.Event interface.
func (e EventOther) EventType() bloc.EventType {
	return EventOtherType
}

// State is a mocked bloc.State, useful in testing.
type State struct {
	Content    string
	IsLoading  bool
	Dispatcher bloc.Dispatcher
}

var _ = bloc.State(State{})

// Loading implements the Loading method of the bloc.State interface.
func (s State) Loading() bool {
	return s.IsLoading
}

// WithLoading implements the WithLoading method of the bloc.State interface.
func (s State) WithLoading(loading bool) bloc.State {
	s.IsLoading = loading

	return s
}

// WithDispatcher implements the WithDispatcher method of the bloc.State interface.
func (s State) WithDispatcher(d bloc.Dispatcher) bloc.State {
	s.Dispatcher = d

	return s
}

// Handler is a mocked bloc.Handler, useful in testing.
type Handler struct {
	Events  []bloc.Event
	States  []bloc.State
	Context context.Context
	Recv    chan bloc.Event
	// Emits are emitted, in order, on every handled event.
	Emits []bloc.State
	// Used to simulate errors in HandleEvent.
	Err error
	// Used to simulate slow handlers.
	Delay time.Duration
}

var _ = bloc.Handler(&Handler{})

// NewHandler creates a new Handler.
func NewHandler() *Handler {
	return &Handler{
		Events:  make([]bloc.Event, 0),
		States:  make([]bloc.State, 0),
		Context: context.Background(),
		Recv:    make(chan bloc.Event, 10),
	}
}

// HandleEvent implements the HandleEvent method of the bloc.Handler interface.
func (m *Handler) HandleEvent(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) error {
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}

	m.Events = append(m.Events, event)
	m.States = append(m.States, state)
	m.Context = ctx

	for _, s := range m.Emits {
		if err := em.Emit(s); err != nil {
			m.Recv <- event

			return err
		}
	}

	m.Recv <- event

	return m.Err
}

// WaitForEvent is a helper to wait until an event has been handled, it
// timeouts after 1 second.
func (m *Handler) WaitForEvent(t *testing.T) {
	select {
	case <-m.Recv:
		return
	case <-time.After(time.Second):
		t.Error("did not receive event in time")
	}
}

// Emitter is a mocked bloc.Emitter, useful in testing.
type Emitter struct {
	States []bloc.State
	// Used to simulate errors in Emit.
	Err error
}

var _ = bloc.Emitter(&Emitter{})

// Emit implements the Emit method of the bloc.Emitter interface.
func (m *Emitter) Emit(state bloc.State) error {
	if m.Err != nil {
		return m.Err
	}

	m.States = append(m.States, state)

	return nil
}

// Observer is a mocked bloc.Observer, useful in testing.
type Observer struct {
	Events      []bloc.Event
	Transitions []bloc.Transition
	Errors      []error
	Context     context.Context
	Recv        chan bloc.Transition
}

var _ = bloc.Observer(&Observer{})

// NewObserver creates a new Observer.
func NewObserver() *Observer {
	return &Observer{
		Events:      make([]bloc.Event, 0),
		Transitions: make([]bloc.Transition, 0),
		Errors:      make([]error, 0),
		Context:     context.Background(),
		Recv:        make(chan bloc.Transition, 10),
	}
}

// OnEvent implements the OnEvent method of the bloc.Observer interface.
func (m *Observer) OnEvent(ctx context.Context, event bloc.Event) {
	m.Events = append(m.Events, event)
	m.Context = ctx
}

// OnTransition implements the OnTransition method of the bloc.Observer interface.
func (m *Observer) OnTransition(ctx context.Context, t bloc.Transition) {
	m.Transitions = append(m.Transitions, t)
	m.Context = ctx
	m.Recv <- t
}

// OnError implements the OnError method of the bloc.Observer interface.
func (m *Observer) OnError(ctx context.Context, event bloc.Event, err error) {
	m.Errors = append(m.Errors, err)
	m.Context = ctx
}

// WaitForTransition is a helper to wait until a transition has been observed,
// it timeouts after 1 second.
func (m *Observer) WaitForTransition(t *testing.T) bloc.Transition {
	select {
	case tr := <-m.Recv:
		return tr
	case <-time.After(time.Second):
		t.Error("did not receive transition in time")

		return bloc.Transition{}
	}
}

// Dispatcher is a mocked bloc.Dispatcher, useful in testing.
type Dispatcher struct {
	Events  []bloc.Event
	Context context.Context
	Recv    chan bloc.Event
	// Used to simulate errors in Dispatch.
	Err error
}

var _ = bloc.Dispatcher(&Dispatcher{})

// NewDispatcher creates a new Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Events:  make([]bloc.Event, 0),
		Context: context.Background(),
		Recv:    make(chan bloc.Event, 10),
	}
}

// Dispatch implements the Dispatch method of the bloc.Dispatcher interface.
func (m *Dispatcher) Dispatch(ctx context.Context, event bloc.Event) error {
	if m.Err != nil {
		return m.Err
	}

	m.Events = append(m.Events, event)
	m.Context = ctx
	m.Recv <- event

	return nil
}

// WaitForEvent is a helper to wait until an event has been dispatched, it
// timeouts after 1 second.
func (m *Dispatcher) WaitForEvent(t *testing.T) bloc.Event {
	select {
	case event := <-m.Recv:
		return event
	case <-time.After(time.Second):
		t.Error("did not receive event in time")

		return nil
	}
}

type contextKey int

const (
	contextKeyOne contextKey = iota
)

// WithContextOne sets a value for One one the context.
func WithContextOne(ctx context.Context, val string) context.Context {
	return context.WithValue(ctx, contextKeyOne, val)
}

// ContextOne returns a value for One from the context.
func ContextOne(ctx context.Context) (string, bool) {
	val, ok := ctx.Value(contextKeyOne).(string)

	return val, ok
}
