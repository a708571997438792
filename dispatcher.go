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

// Dispatcher is an interface for anything that accepts events for handling,
// most commonly a Processor.
type Dispatcher interface {
	// Dispatch submits an event for handling. It returns when the event has
	// been accepted, not when it has been handled.
	Dispatch(context.Context, Event) error
}

// DispatcherFunc is a function that can be used as a dispatcher.
type DispatcherFunc func(context.Context, Event) error

// Dispatch implements the Dispatch method of the Dispatcher.
func (d DispatcherFunc) Dispatch(ctx context.Context, e Event) error {
	return d(ctx, e)
}

// DispatcherMiddleware is a function that middlewares can implement to be
// able to chain.
type DispatcherMiddleware func(Dispatcher) Dispatcher

// UseDispatcherMiddleware wraps a Dispatcher in one or more middleware.
func UseDispatcherMiddleware(d Dispatcher, middleware ...DispatcherMiddleware) Dispatcher {
	// Apply in reverse order.
	for i := len(middleware) - 1; i >= 0; i-- {
		m := middleware[i]
		d = m(d)
	}

	return d
}
