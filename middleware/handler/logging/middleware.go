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

// Package logging logs the handling cycle of every event.
package logging

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/looplab/bloc"
)

// NewMiddleware returns a middleware that logs every handled event with its
// duration and outcome.
func NewMiddleware(logger *zap.Logger) bloc.HandlerMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}

	return bloc.HandlerMiddleware(func(h bloc.Handler) bloc.Handler {
		return bloc.HandlerFunc(func(ctx context.Context, event bloc.Event, state bloc.State, em bloc.Emitter) error {
			start := time.Now()

			err := h.HandleEvent(ctx, event, state, em)

			fields := []zap.Field{
				zap.String("event_type", event.EventType().String()),
				zap.Duration("took", time.Since(start)),
			}
			if id, ok := bloc.EventIDFromContext(ctx); ok {
				fields = append(fields, zap.String("event_id", id.String()))
			}

			if err != nil {
				logger.Error("event handling failed", append(fields, zap.Error(err))...)

				return err
			}

			logger.Debug("event handled", fields...)

			return nil
		})
	})
}
