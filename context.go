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
	"context"

	"github.com/google/uuid"
)

type contextKey int

const (
	eventIDKey contextKey = iota
)

// NewContextWithEventID sets the ID of the event being handled in the
// context. The processor does this for every dispatched event.
func NewContextWithEventID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// EventIDFromContext returns the ID of the event being handled, used to
// correlate logs, traces and errors with a dispatch.
func EventIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(eventIDKey).(uuid.UUID)

	return id, ok
}
