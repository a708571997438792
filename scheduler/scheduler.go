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

// Package scheduler dispatches events on cron schedules or at delays.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/looplab/bloc"
)

// ErrMissingDispatcher is when a scheduler is created without a dispatcher.
var ErrMissingDispatcher = errors.New("missing dispatcher")

// Scheduler dispatches events to a dispatcher periodically or with a delay.
// It uses the cron syntax from https://github.com/gorhill/cronexpr.
type Scheduler struct {
	d     bloc.Dispatcher
	errCh chan error

	wg     sync.WaitGroup
	cctx   context.Context
	cancel context.CancelFunc
}

// NewScheduler creates a Scheduler that runs until the context is canceled
// or it is closed.
func NewScheduler(ctx context.Context, d bloc.Dispatcher) (*Scheduler, error) {
	if d == nil {
		return nil, ErrMissingDispatcher
	}

	cctx, cancel := context.WithCancel(ctx)

	return &Scheduler{
		d:      d,
		errCh:  make(chan error, 100),
		cctx:   cctx,
		cancel: cancel,
	}, nil
}

// ScheduleEvent schedules an event to be dispatched on regular intervals,
// using a line in the crontab format to setup the timing. The eventFunc
// should create the event to dispatch given the triggered time as input.
// Cancelling the context will stop the triggering of more events.
func (s *Scheduler) ScheduleEvent(ctx context.Context, cronLine string, eventFunc func(time.Time) bloc.Event) error {
	if err := s.cctx.Err(); err != nil {
		return err
	}

	expr, err := cronexpr.Parse(cronLine)
	if err != nil {
		return fmt.Errorf("could not parse cron line: %w", err)
	}

	s.wg.Add(1)

	// Schedule until either this schedule is canceled or the full scheduler
	// is stopped.
	go func() {
		defer s.wg.Done()

		for {
			nextTime := expr.Next(time.Now())
			if nextTime.IsZero() {
				// The cron line has no more trigger times.
				return
			}

			select {
			case <-time.After(time.Until(nextTime)):
				if err := s.d.Dispatch(ctx, eventFunc(nextTime)); err != nil {
					s.reportError(err)
				}
			case <-ctx.Done():
				// Stop when this individual scheduling is canceled.
				return
			case <-s.cctx.Done():
				// Stop when the full scheduler is stopped.
				return
			}
		}
	}()

	return nil
}

// DispatchAt dispatches an event once at a later time. It returns
// immediately; dispatch errors are reported on the error channel.
func (s *Scheduler) DispatchAt(ctx context.Context, event bloc.Event, at time.Time) error {
	if event == nil {
		return bloc.ErrMissingEvent
	}

	if err := s.cctx.Err(); err != nil {
		return err
	}

	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		t := time.NewTimer(time.Until(at))
		defer t.Stop()

		var err error

		select {
		case <-t.C:
			err = s.d.Dispatch(ctx, event)
		case <-ctx.Done():
			err = ctx.Err()
		case <-s.cctx.Done():
			return
		}

		if err != nil {
			s.reportError(err)
		}
	}()

	return nil
}

// Errors returns an error channel with errors from dispatching scheduled
// events. It must be drained, or errors beyond the channel buffer are
// discarded.
func (s *Scheduler) Errors() <-chan error {
	return s.errCh
}

// Close stops all schedules and waits for them to finish.
func (s *Scheduler) Close() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) reportError(err error) {
	select {
	case s.errCh <- err:
	default:
	}
}
