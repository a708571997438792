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

package local

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/looplab/bloc"
)

// ErrSubscriptionClosed is when states are received from a subscription that
// has been closed, by itself or by its processor.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Subscribe registers interest in state snapshots matching a matcher. All
// matching snapshots published after registration are delivered to the
// subscription, in emission order. The state that was current before
// subscribing is available with Current.
func (p *Processor) Subscribe(match bloc.StateMatcher) (*Subscription, error) {
	if match == nil {
		return nil, bloc.ErrMissingMatcher
	}

	s := &Subscription{
		id:         uuid.New(),
		inbox:      make(chan bloc.State, DefaultQueueSize),
		match:      match,
		unregister: p.unregister,
		cctx:       p.cctx,
	}

	// Register us to the in-flight subscriptions.
	select {
	case p.register <- s:
	case <-p.cctx.Done():
		return nil, bloc.ErrProcessorClosed
	}

	return s, nil
}

// Subscription receives state snapshots from a Processor.
type Subscription struct {
	id         uuid.UUID
	inbox      chan bloc.State
	match      bloc.StateMatcher
	unregister chan *Subscription
	cctx       context.Context
	dropped    atomic.Uint64
	closeOnce  sync.Once
}

// Next waits for the next state to arrive or the context to be cancelled.
func (s *Subscription) Next(ctx context.Context) (bloc.State, error) {
	select {
	case state, ok := <-s.inbox:
		if !ok {
			return nil, ErrSubscriptionClosed
		}

		return state, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Inbox returns the channel that states will be delivered on so that you can
// integrate into your own select() if needed. It is closed when the
// subscription or its processor is closed.
func (s *Subscription) Inbox() <-chan bloc.State {
	return s.inbox
}

// Dropped returns the number of states that were dropped because the inbox
// was full.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close stops receiving more states.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		select {
		case s.unregister <- s:
		case <-s.cctx.Done():
		}
	})
}
