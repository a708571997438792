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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/looplab/bloc"
)

func TestLoggerTransition(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core))

	l.OnTransition(context.Background(), bloc.Transition{
		Event: Increment{},
		From:  Counter{},
		To:    Counter{Value: 1},
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "counter transition", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, string(IncrementEvent), fields["event_type"])
	assert.Equal(t, int64(1), fields["value"])
	assert.Equal(t, false, fields["loading"])
}

func TestLoggerEventAndError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewLogger(zap.New(core))

	l.OnEvent(context.Background(), Increment{})
	l.OnError(context.Background(), Reset{}, errors.New("handler error"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "counter event", entries[0].Message)
	assert.Equal(t, "counter error", entries[1].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "handler error", entries[1].ContextMap()["error"])
}

func TestLoggerNil(t *testing.T) {
	l := NewLogger(nil)

	// Must not panic without a logger.
	l.OnEvent(context.Background(), Increment{})
	l.OnTransition(context.Background(), bloc.Transition{Event: Increment{}})
	l.OnError(context.Background(), Increment{}, errors.New("handler error"))
}
