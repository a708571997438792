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

// Package recovery turns handler panics into errors.
package recovery

import (
	"context"
	"fmt"

	"github.com/looplab/bloc"
)

// NewMiddleware returns a middleware that recovers from panics in the handler
// and returns them as errors, so that a panicking handler fails its handling
// cycle instead of taking the processor down.
func NewMiddleware() bloc.HandlerMiddleware {
	return bloc.HandlerMiddleware(func(h bloc.Handler) bloc.Handler {
		return bloc.HandlerFunc(func(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				if rerr, ok := r.(error); ok {
					err = Error{rerr}

					return
				}

				err = Error{fmt.Errorf("%v", r)}
			}()

			return h.HandleEvent(ctx, event, state, em)
		})
	})
}

// Error is a recovered panic from a handler.
type Error struct {
	err error
}

// Error implements the Error method of the error interface.
func (e Error) Error() string {
	return fmt.Sprintf("handler panic: %s", e.err.Error())
}

// Unwrap implements the errors.Unwrap method.
func (e Error) Unwrap() error {
	return e.err
}
