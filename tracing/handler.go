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

package tracing

import (
	"context"
	"fmt"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"github.com/looplab/bloc"
)

// NewHandlerMiddleware returns a handler middleware that adds tracing spans
// around the handling cycle of each event.
func NewHandlerMiddleware() bloc.HandlerMiddleware {
	return bloc.HandlerMiddleware(func(h bloc.Handler) bloc.Handler {
		return bloc.HandlerFunc(func(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) error {
			opName := fmt.Sprintf("Event(%s)", event.EventType())
			sp, ctx := opentracing.StartSpanFromContext(ctx, opName)

			err := h.HandleEvent(ctx, event, state, em)
			if err != nil {
				ext.LogError(sp, err)
			}

			sp.SetTag("bloc.event_type", event.EventType())
			if id, ok := bloc.EventIDFromContext(ctx); ok {
				sp.SetTag("bloc.event_id", id.String())
			}

			sp.Finish()

			return err
		})
	})
}
