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
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jpillora/backoff"
	"go.uber.org/zap"

	"github.com/looplab/bloc"
)

// DefaultQueueSize is the default size of the dispatch queue and of
// subscription inboxes.
var DefaultQueueSize = 10

var (
	// ErrMissingInitialState is when a processor is created without an
	// initial state.
	ErrMissingInitialState = errors.New("missing initial state")
	// ErrMissingRegistry is when a processor is created without a registry.
	ErrMissingRegistry = errors.New("missing registry")
	// ErrVersionNotReached is when the requested version has not been
	// published yet and the context has no deadline to wait with.
	ErrVersionNotReached = errors.New("version not reached")
)

// Processor is a local processor that runs the handling cycle for dispatched
// events on a single goroutine, one event at a time. State snapshots are
// published in emission order to all matching subscriptions.
type Processor struct {
	name      string
	handlers  map[bloc.EventType]bloc.Handler
	queueSize int

	queue      chan evt
	register   chan *Subscription
	unregister chan *Subscription
	// subs is owned by the run goroutine.
	subs map[uuid.UUID]*Subscription

	current   bloc.State
	version   uint64
	currentMu sync.RWMutex

	errCh chan bloc.ProcessorError

	observer bloc.Observer
	logger   *zap.Logger

	wg      sync.WaitGroup
	cctx    context.Context
	cancel  context.CancelFunc
	closeMu sync.RWMutex
}

var _ = bloc.Processor(&Processor{})

type evt struct {
	ctx   context.Context
	event bloc.Event
}

// NewProcessor creates a Processor for an initial state and the handlers of a
// registry. The registry contents are copied; handlers registered after this
// are not seen by the processor.
func NewProcessor(initial bloc.State, r *bloc.Registry, options ...Option) (*Processor, error) {
	if initial == nil {
		return nil, ErrMissingInitialState
	}

	if r == nil {
		return nil, ErrMissingRegistry
	}

	ctx, cancel := context.WithCancel(context.Background())

	p := &Processor{
		name:       uuid.New().String(),
		handlers:   r.Handlers(),
		queueSize:  DefaultQueueSize,
		register:   make(chan *Subscription),
		unregister: make(chan *Subscription),
		subs:       map[uuid.UUID]*Subscription{},
		errCh:      make(chan bloc.ProcessorError, 100),
		observer:   bloc.NopObserver{},
		logger:     zap.NewNop(),
		cctx:       ctx,
		cancel:     cancel,
	}

	// Apply configuration options.
	for _, option := range options {
		if option == nil {
			continue
		}

		if err := option(p); err != nil {
			cancel()

			return nil, fmt.Errorf("error while applying option: %w", err)
		}
	}

	p.queue = make(chan evt, p.queueSize)
	p.current = initial.WithDispatcher(p)

	p.wg.Add(1)

	go p.run()

	return p, nil
}

// Option is an option setter used to configure creation.
type Option func(*Processor) error

// WithName uses a specific name for the processor in logs.
func WithName(name string) Option {
	return func(p *Processor) error {
		if name == "" {
			return fmt.Errorf("missing name")
		}

		p.name = name

		return nil
	}
}

// WithLogger uses a logger for lifecycle and handling logs.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) error {
		if logger == nil {
			return fmt.Errorf("missing logger")
		}

		p.logger = logger

		return nil
	}
}

// WithObserver notifies an observer about all events, transitions and errors.
func WithObserver(o bloc.Observer) Option {
	return func(p *Processor) error {
		if o == nil {
			return fmt.Errorf("missing observer")
		}

		p.observer = o

		return nil
	}
}

// WithQueueSize uses a specific queue size for dispatched events, instead of
// DefaultQueueSize.
func WithQueueSize(size int) Option {
	return func(p *Processor) error {
		if size < 1 {
			return fmt.Errorf("invalid queue size: %d", size)
		}

		p.queueSize = size

		return nil
	}
}

// Dispatch implements the Dispatch method of the bloc.Dispatcher interface.
// It returns when the event has been queued, not when it has been handled.
func (p *Processor) Dispatch(ctx context.Context, event bloc.Event) error {
	if event == nil {
		return bloc.ErrMissingEvent
	}

	// Serialize sends with the drain in Close.
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()

	// The queue is buffered, a send could succeed after close.
	if p.cctx.Err() != nil {
		return bloc.ErrProcessorClosed
	}

	ctx = bloc.NewContextWithEventID(ctx, uuid.New())

	select {
	case p.queue <- evt{ctx, event}:
		return nil
	case <-p.cctx.Done():
		return bloc.ErrProcessorClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Current implements the Current method of the bloc.Processor interface.
func (p *Processor) Current() bloc.State {
	p.currentMu.RLock()
	defer p.currentMu.RUnlock()

	return p.current
}

// Version returns the number of state snapshots published so far. The
// initial state is version 0.
func (p *Processor) Version() uint64 {
	p.currentMu.RLock()
	defer p.currentMu.RUnlock()

	return p.version
}

// WaitForVersion returns the current state once its version is at least
// minVersion. If a timeout or deadline is set on the context it will retry
// with exponentially longer intervals until the deadline expires. If there
// is no deadline it only checks once and also returns the state it saw.
func (p *Processor) WaitForVersion(ctx context.Context, minVersion uint64) (bloc.State, error) {
	delay := &backoff.Backoff{}
	_, hasDeadline := ctx.Deadline()

	for {
		p.currentMu.RLock()
		current, version := p.current, p.version
		p.currentMu.RUnlock()

		if version >= minVersion {
			return current, nil
		}

		// If there is no deadline, return whatever we have at this point.
		if !hasDeadline {
			return current, ErrVersionNotReached
		}

		select {
		case <-time.After(delay.Duration()):
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-p.cctx.Done():
			return nil, bloc.ErrProcessorClosed
		}
	}
}

// Errors implements the Errors method of the bloc.Processor interface.
func (p *Processor) Errors() <-chan bloc.ProcessorError {
	return p.errCh
}

// Close implements the Close method of the bloc.Processor interface. It
// waits for a handling cycle in flight to finish, then discards all queued
// events and closes all subscription inboxes.
func (p *Processor) Close() error {
	if p.cctx.Err() != nil {
		return nil
	}

	p.cancel()
	p.wg.Wait()

	// No event can enter the queue once the drain has run.
	p.closeMu.Lock()
	defer p.closeMu.Unlock()

	var dropped int

loop:
	for {
		select {
		case <-p.queue:
			dropped++
		default:
			break loop
		}
	}

	if dropped > 0 {
		p.logger.Warn("discarding queued events on close",
			zap.String("processor", p.name),
			zap.Int("count", dropped),
		)
	}

	p.logger.Info("processor closed",
		zap.String("processor", p.name),
	)

	return nil
}

func (p *Processor) run() {
	defer p.wg.Done()

	for {
		select {
		case s := <-p.register:
			p.subs[s.id] = s
		case s := <-p.unregister:
			// Check for existence to avoid closing channel twice.
			if _, ok := p.subs[s.id]; ok {
				delete(p.subs, s.id)
				close(s.inbox)
			}
		case e := <-p.queue:
			p.process(e.ctx, e.event)
		case <-p.cctx.Done():
			for _, s := range p.subs {
				close(s.inbox)
			}
			p.subs = nil

			return
		}
	}
}

// process runs the handling cycle for a single event: a copy of the current
// state marked as loading is published first, then all states emitted by the
// handler, and finally a settled copy of the last state if the handler did
// not settle it itself. A handler that panics takes the processor down unless
// it is wrapped in recovery middleware.
func (p *Processor) process(ctx context.Context, event bloc.Event) {
	id, _ := bloc.EventIDFromContext(ctx)
	p.logger.Debug("handling event",
		zap.String("processor", p.name),
		zap.String("event_type", event.EventType().String()),
		zap.String("event_id", id.String()),
	)

	p.observer.OnEvent(ctx, event)

	current := p.Current()
	p.emit(ctx, event, current.WithLoading(true))

	h, ok := p.handlers[event.EventType()]
	if !ok {
		p.logger.Warn("no handler for event",
			zap.String("processor", p.name),
			zap.String("event_type", event.EventType().String()),
		)
		p.reportError(ctx, event, fmt.Errorf("%w: %s", bloc.ErrHandlerNotFound, event.EventType()))
		p.settle(ctx, event)

		return
	}

	em := &emitter{p: p, ctx: ctx, event: event}
	defer func() {
		em.complete()
		p.settle(ctx, event)
	}()

	if err := h.HandleEvent(ctx, event, current, em); err != nil {
		p.logger.Error("could not handle event",
			zap.String("processor", p.name),
			zap.String("event_type", event.EventType().String()),
			zap.Error(err),
		)
		p.reportError(ctx, event, fmt.Errorf("could not handle event (%s): %w", event.EventType(), err))
	}
}

// emit publishes a state snapshot: it becomes the current state and is
// delivered to all matching subscriptions.
func (p *Processor) emit(ctx context.Context, event bloc.Event, next bloc.State) {
	next = next.WithDispatcher(p)

	p.currentMu.Lock()
	prev := p.current
	p.current = next
	p.version++
	version := p.version
	p.currentMu.Unlock()

	p.observer.OnTransition(ctx, bloc.Transition{Event: event, From: prev, To: next})

	p.logger.Debug("state emitted",
		zap.String("processor", p.name),
		zap.Uint64("version", version),
		zap.Bool("loading", next.Loading()),
	)

	for _, s := range p.subs {
		if !s.match(next) {
			continue
		}

		select {
		case s.inbox <- next:
		default:
			// Drop any states exceeding the subscription buffer.
			p.logger.Warn("dropping state: subscription inbox full",
				zap.String("processor", p.name),
				zap.Uint64("dropped", s.dropped.Add(1)),
			)
		}
	}
}

// settle publishes a settled copy of the current state if the handling cycle
// left it loading.
func (p *Processor) settle(ctx context.Context, event bloc.Event) {
	if current := p.Current(); current.Loading() {
		p.emit(ctx, event, current.WithLoading(false))
	}
}

func (p *Processor) reportError(ctx context.Context, event bloc.Event, err error) {
	p.observer.OnError(ctx, event, err)

	id, _ := bloc.EventIDFromContext(ctx)

	select {
	case p.errCh <- bloc.ProcessorError{Err: err, Event: event, EventID: id}:
	default:
		p.logger.Error("missed error in processor",
			zap.String("processor", p.name),
			zap.Error(err),
		)
	}
}

// emitter hands emitted states to the processor for the duration of a single
// handling cycle. Completing it serializes with any emit still in progress,
// so that no state can be published after the cycle has settled.
type emitter struct {
	p     *Processor
	ctx   context.Context
	event bloc.Event

	mu        sync.Mutex
	completed bool
}

var _ = bloc.Emitter(&emitter{})

// Emit implements the Emit method of the bloc.Emitter interface.
func (e *emitter) Emit(s bloc.State) error {
	if s == nil {
		return bloc.ErrMissingState
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completed {
		return bloc.ErrEmitterCompleted
	}

	e.p.emit(e.ctx, e.event, s)

	return nil
}

func (e *emitter) complete() {
	e.mu.Lock()
	e.completed = true
	e.mu.Unlock()
}
