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

// Package bloc is an event-driven state management toolkit.
package bloc

// Event is a domain event describing something that has happened in the UI or
// the surrounding system, sent to a Dispatcher to drive state changes.
//
// An event struct and type name should:
//  1. Be in imperative or noun form (Increment, Reset)
//  2. Contain the intent (Increment vs ChangeValue).
//
// The event should contain all the data needed when handling it.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType
}

// EventType is the type of an event, used as its unique identifier.
type EventType string

// String implements the String method of the fmt.Stringer interface.
func (et EventType) String() string {
	return string(et)
}

// State is an immutable snapshot of application state. Implementations are
// value types; the With methods return modified copies and must never mutate
// the receiver.
type State interface {
	// Loading returns true while an event is being handled, that is between
	// the opening and closing emissions of a handling cycle.
	Loading() bool

	// WithLoading returns a copy of the state with the loading flag set.
	WithLoading(loading bool) State

	// WithDispatcher returns a copy of the state carrying a dispatcher, so
	// that consumers of a snapshot can send new events without a separate
	// reference to the processor.
	WithDispatcher(d Dispatcher) State
}
