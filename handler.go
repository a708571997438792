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
	"errors"
)

// ErrEmitterCompleted is when a handler emits after its handling cycle has
// finished, for example from a goroutine that outlives the handler call.
var ErrEmitterCompleted = errors.New("emitter completed")

// Emitter is used by handlers to yield intermediate and final states during
// a handling cycle. It is only valid for the duration of the HandleEvent call
// it was passed to.
type Emitter interface {
	// Emit publishes a new state snapshot. Snapshots are published in the
	// order emitted.
	Emit(State) error
}

// Handler is a handler of events. It receives the state that was current when
// handling began and emits zero or more new states.
//
// Handlers never mutate the state they receive; new states are built with the
// With methods of State.
type Handler interface {
	// HandleEvent handles an event.
	HandleEvent(context.Context, Event, State, Emitter) error
}

// HandlerFunc is a function that can be used as an event handler.
type HandlerFunc func(context.Context, Event, State, Emitter) error

// HandleEvent implements the HandleEvent method of the Handler.
func (h HandlerFunc) HandleEvent(ctx context.Context, e Event, s State, em Emitter) error {
	return h(ctx, e, s, em)
}

// HandlerMiddleware is a function that middlewares can implement to be able
// to chain.
type HandlerMiddleware func(Handler) Handler

// UseHandlerMiddleware wraps a Handler in one or more middleware.
func UseHandlerMiddleware(h Handler, middleware ...HandlerMiddleware) Handler {
	// Apply in reverse order.
	for i := len(middleware) - 1; i >= 0; i-- {
		m := middleware[i]
		h = m(h)
	}

	return h
}
