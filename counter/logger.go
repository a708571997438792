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

	"go.uber.org/zap"

	"github.com/looplab/bloc"
)

// Logger is a simple bloc.Observer logging all counter activity.
type Logger struct {
	logger *zap.Logger
}

var _ = bloc.Observer(&Logger{})

// NewLogger creates a new Logger. A nil logger falls back to a no-op.
func NewLogger(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Logger{logger: logger}
}

// OnEvent implements the OnEvent method of the bloc.Observer interface.
func (l *Logger) OnEvent(ctx context.Context, event bloc.Event) {
	l.logger.Info("counter event",
		zap.String("event_type", event.EventType().String()),
	)
}

// OnTransition implements the OnTransition method of the bloc.Observer
// interface.
func (l *Logger) OnTransition(ctx context.Context, t bloc.Transition) {
	fields := []zap.Field{
		zap.String("event_type", t.Event.EventType().String()),
	}
	if c, ok := t.To.(Counter); ok {
		fields = append(fields,
			zap.Int("value", c.Value),
			zap.Bool("loading", c.IsLoading),
		)
	}

	l.logger.Info("counter transition", fields...)
}

// OnError implements the OnError method of the bloc.Observer interface.
func (l *Logger) OnError(ctx context.Context, event bloc.Event, err error) {
	l.logger.Error("counter error",
		zap.String("event_type", event.EventType().String()),
		zap.Error(err),
	)
}
