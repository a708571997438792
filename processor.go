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

package bloc

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrMissingEvent is when there is no event to be dispatched.
	ErrMissingEvent = errors.New("missing event")
	// ErrMissingState is when there is no state to be emitted.
	ErrMissingState = errors.New("missing state")
	// ErrMissingMatcher is when there is no matcher for a subscription.
	ErrMissingMatcher = errors.New("missing matcher")
	// ErrHandlerNotFound is when no handler is registered for an event type.
	ErrHandlerNotFound = errors.New("no handler for event")
	// ErrProcessorClosed is when a processor can no longer accept events.
	ErrProcessorClosed = errors.New("processor is closed")
	// ErrNoDispatcher is when a state snapshot without a dispatcher is used
	// to dispatch an event.
	ErrNoDispatcher = errors.New("no dispatcher set")
)

// Processor runs the handling cycle for a single piece of state: dispatched
// events are routed to their registered handlers, and the state snapshots the
// handlers produce are published in order to subscribers.
type Processor interface {
	Dispatcher

	// Current returns the latest published state snapshot.
	Current() State

	// Errors returns an error channel with async errors from event handling.
	// It must be drained, or errors beyond the channel buffer are discarded.
	Errors() <-chan ProcessorError

	// Close shuts the processor down, waiting for any handling cycle in
	// flight to finish. Events still queued are discarded.
	Close() error
}

// ProcessorError is an async error containing the error, the event being
// handled when it happened and the ID assigned to its dispatch.
type ProcessorError struct {
	// Err is the error that happened when handling the event.
	Err error
	// Event is the event handled when the error happened.
	Event Event
	// EventID is the ID assigned to the event when it was dispatched.
	EventID uuid.UUID
}

// Error implements the Error method of the errors.Error interface.
func (e ProcessorError) Error() string {
	str := "processor: "

	if e.Err != nil {
		str += e.Err.Error()
	} else {
		str += "unknown error"
	}

	if e.Event != nil {
		str += fmt.Sprintf(" (%s)", e.Event.EventType())
	}

	if e.EventID != uuid.Nil {
		str += fmt.Sprintf(" [%s]", e.EventID)
	}

	return str
}

// Unwrap implements the errors.Unwrap method, returning the causing error.
func (e ProcessorError) Unwrap() error {
	return e.Err
}
