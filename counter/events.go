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

package counter

import (
	"github.com/looplab/bloc"
)

const (
	// IncrementEvent is when the counter should count up by one step.
	IncrementEvent bloc.EventType = "Increment"

	// ResetEvent is when the counter should return to the start value.
	ResetEvent bloc.EventType = "Reset"
)

// Increment is an event for counting up by one step. It carries no payload.
type Increment struct{}

var _ = bloc.Event(Increment{})

// EventType implements the EventType method of the bloc.Event interface.
func (e Increment) EventType() bloc.EventType {
	return IncrementEvent
}

// Reset is an event for setting the counter back to the start value.
type Reset struct{}

var _ = bloc.Event(Reset{})

// EventType implements the EventType method of the bloc.Event interface.
func (e Reset) EventType() bloc.EventType {
	return ResetEvent
}
