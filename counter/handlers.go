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
	"context"
	"errors"
	"fmt"

	"github.com/looplab/bloc"
)

// ErrStateType is when a handler receives a state that is not a Counter.
var ErrStateType = errors.New("state is not a counter")

// NewIncrementHandler returns the handler advancing the value on every
// Increment event. It emits exactly one replacement snapshot.
func NewIncrementHandler(p Provider) bloc.Handler {
	return bloc.HandlerFunc(func(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) error {
		c, ok := state.(Counter)
		if !ok {
			return fmt.Errorf("%w: %T", ErrStateType, state)
		}

		return em.Emit(c.WithValue(p.Increment(c.Value)))
	})
}

// NewResetHandler returns the handler setting the value back to the start
// value on every Reset event. It emits exactly one replacement snapshot.
func NewResetHandler(p Provider) bloc.Handler {
	return bloc.HandlerFunc(func(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) error {
		c, ok := state.(Counter)
		if !ok {
			return fmt.Errorf("%w: %T", ErrStateType, state)
		}

		return em.Emit(c.WithValue(p.Reset()))
	})
}
