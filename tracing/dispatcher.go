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

// Package tracing adds distributed tracing spans to dispatch and handling.
package tracing

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/looplab/bloc"
)

// NewDispatcherMiddleware returns a dispatcher middleware that adds tracing spans.
func NewDispatcherMiddleware() bloc.DispatcherMiddleware {
	return bloc.DispatcherMiddleware(func(d bloc.Dispatcher) bloc.Dispatcher {
		return bloc.DispatcherFunc(func(ctx context.Context, event bloc.Event) error {
			if event == nil {
				return d.Dispatch(ctx, event)
			}

			opName := fmt.Sprintf("Dispatch(%s)", event.EventType())
			sp, ctx := opentracing.StartSpanFromContext(ctx, opName)

			err := d.Dispatch(ctx, event)

			sp.SetTag("bloc.event_type", event.EventType())
			if err != nil {
				ext.LogError(sp, err)
			}
			sp.Finish()

			return err
		})
	})
}
