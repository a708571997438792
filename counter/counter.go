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

// Package counter implements a minimal counting domain on top of the bloc
// toolkit. It is the canonical demo of the event to state cycle: events go
// in, replacement snapshots come out.
package counter

import (
	"context"

	"github.com/looplab/bloc"
)

// Counter is the state of the counting domain: the current value plus the
// in-progress flag of the handling cycle. The zero value is a settled
// counter at zero.
type Counter struct {
	Value     int
	IsLoading bool

	dispatcher bloc.Dispatcher
}

var _ = bloc.State(Counter{})

// Loading implements the Loading method of the bloc.State interface.
func (c Counter) Loading() bool {
	return c.IsLoading
}

// WithValue returns a copy of the counter with the value replaced.
func (c Counter) WithValue(value int) Counter {
	c.Value = value

	return c
}

// WithLoading implements the WithLoading method of the bloc.State interface.
func (c Counter) WithLoading(loading bool) bloc.State {
	c.IsLoading = loading

	return c
}

// WithDispatcher implements the WithDispatcher method of the bloc.State
// interface.
func (c Counter) WithDispatcher(d bloc.Dispatcher) bloc.State {
	c.dispatcher = d

	return c
}

// Dispatch submits an event through the dispatcher carried by this
// snapshot, which makes views built only on received snapshots able to
// trigger new events. Detached counters return bloc.ErrNoDispatcher.
func (c Counter) Dispatch(ctx context.Context, event bloc.Event) error {
	if c.dispatcher == nil {
		return bloc.ErrNoDispatcher
	}

	return c.dispatcher.Dispatch(ctx, event)
}
