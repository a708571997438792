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
	"errors"
	"sort"
	"sync"
)

var (
	// ErrMissingHandler is when there is no handler to be registered.
	ErrMissingHandler = errors.New("missing handler")
	// ErrEmptyEventType is when a handler is registered for an empty event type.
	ErrEmptyEventType = errors.New("empty event type")
	// ErrHandlerAlreadySet is when a handler is already registered for an event type.
	ErrHandlerAlreadySet = errors.New("handler is already set")
)

// Registry maps event types to the handlers for them. It is populated during
// setup and then handed to a processor, which takes a snapshot of it; handlers
// registered after that are not seen by the processor.
type Registry struct {
	handlers   map[EventType]Handler
	handlersMu sync.RWMutex
}

// NewRegistry creates a Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[EventType]Handler),
	}
}

// On registers a handler for a specific event type. There can be at most one
// handler per event type.
func (r *Registry) On(t EventType, h Handler) error {
	if t == EventType("") {
		return ErrEmptyEventType
	}

	if h == nil {
		return ErrMissingHandler
	}

	r.handlersMu.Lock()
	defer r.handlersMu.Unlock()

	if _, ok := r.handlers[t]; ok {
		return ErrHandlerAlreadySet
	}

	r.handlers[t] = h

	return nil
}

// Handler returns the handler registered for an event type, if any.
func (r *Registry) Handler(t EventType) (Handler, bool) {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()

	h, ok := r.handlers[t]

	return h, ok
}

// Handlers returns a copy of the registered handlers, keyed by event type.
func (r *Registry) Handlers() map[EventType]Handler {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()

	handlers := make(map[EventType]Handler, len(r.handlers))
	for t, h := range r.handlers {
		handlers[t] = h
	}

	return handlers
}

// Types returns the registered event types, sorted by name.
func (r *Registry) Types() []EventType {
	r.handlersMu.RLock()
	defer r.handlersMu.RUnlock()

	types := make([]EventType, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		return types[i] < types[j]
	})

	return types
}
