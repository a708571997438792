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
	"context"
)

// Transition is the change from one state snapshot to the next, caused by an
// event.
type Transition struct {
	// Event is the event that caused the transition.
	Event Event
	// From is the state before the transition.
	From State
	// To is the state after the transition.
	To State
}

// Observer is notified about all events, transitions and errors on a
// processor, mainly for logging and debugging. The methods are called from
// the processor's handling goroutine in order and should not block.
type Observer interface {
	// OnEvent is called when an event begins its handling cycle.
	OnEvent(context.Context, Event)

	// OnTransition is called for every state snapshot that is published.
	OnTransition(context.Context, Transition)

	// OnError is called when handling an event fails.
	OnError(context.Context, Event, error)
}

// NopObserver is an observer that does nothing.
type NopObserver struct{}

// OnEvent implements the OnEvent method of the Observer interface.
func (NopObserver) OnEvent(context.Context, Event) {}

// OnTransition implements the OnTransition method of the Observer interface.
func (NopObserver) OnTransition(context.Context, Transition) {}

// OnError implements the OnError method of the Observer interface.
func (NopObserver) OnError(context.Context, Event, error) {}
