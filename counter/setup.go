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
	"fmt"

	"go.uber.org/zap"

	"github.com/looplab/bloc"
	"github.com/looplab/bloc/middleware/handler/logging"
	"github.com/looplab/bloc/middleware/handler/recovery"
	"github.com/looplab/bloc/processor/local"
)

// Setup configures a ready to use counter processor: the handlers for both
// events wrapped in logging and recovery middleware, plus an observer
// logging every transition. Extra options are passed on to the processor.
func Setup(logger *zap.Logger, options ...local.Option) (*local.Processor, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	p := NewProvider()

	// Create the registry and register the handlers for the events of the
	// domain.
	r := bloc.NewRegistry()
	for eventType, handler := range map[bloc.EventType]bloc.Handler{
		IncrementEvent: NewIncrementHandler(p),
		ResetEvent:     NewResetHandler(p),
	} {
		h := bloc.UseHandlerMiddleware(handler,
			logging.NewMiddleware(logger),
			recovery.NewMiddleware(),
		)
		if err := r.On(eventType, h); err != nil {
			return nil, fmt.Errorf("could not register handler for '%s': %w", eventType, err)
		}
	}

	options = append([]local.Option{
		local.WithLogger(logger),
		local.WithObserver(NewLogger(logger)),
	}, options...)

	return local.NewProcessor(Counter{}, r, options...)
}
