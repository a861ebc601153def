// Package coordinator delivers only the outcome of the most recently issued
// request. Results and errors of requests that were superseded before they
// settled are dropped.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/evaldash/internal/metrics"
	"go.uber.org/zap"
)

// ErrNoResult is reported when an operation closes its result channel without
// sending a result.
var ErrNoResult = errors.New("operation settled without a result")

// Token identifies one Issue call. Tokens are strictly increasing per coordinator.
type Token uint64

// Result is the settled outcome of an operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Operation starts an asynchronous unit of work and returns a channel that
// carries exactly one Result. A non-nil error means the work could not be
// started at all.
type Operation[T any] func(ctx context.Context) (<-chan Result[T], error)

// Callbacks are the caller hooks for one Issue call. Any of them may be nil.
type Callbacks[T any] struct {
	OnStart   func(Token)
	OnSuccess func(T)
	OnFailure func(error)
}

type Option func(*options)

type options struct {
	logger           *zap.Logger
	metrics          *metrics.CoordinatorCollectors
	cancelSuperseded bool
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func WithMetrics(collectors *metrics.CoordinatorCollectors) Option {
	return func(o *options) {
		o.metrics = collectors
	}
}

// WithCancelSuperseded cancels the context handed to an operation as soon as a
// newer Issue call supersedes it.
func WithCancelSuperseded() Option {
	return func(o *options) {
		o.cancelSuperseded = true
	}
}

// Coordinator implements latest-wins delivery for one UI surface.
type Coordinator[T any] struct {
	current atomic.Uint64

	// deliverMu makes the counter increment, the swap of the superseded cancel
	// func and the compare-then-callback step mutually exclusive.
	deliverMu sync.Mutex

	// Guarded by deliverMu.
	cancelPrev  context.CancelFunc
	cancelToken Token

	inflight sync.WaitGroup
	opts     options
}

func New[T any](opts ...Option) *Coordinator[T] {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Coordinator[T]{opts: o}
}

// Issue supersedes every earlier request and starts op. OnStart runs
// synchronously before op is started. When op settles, OnSuccess or OnFailure
// runs only if no newer Issue call happened in the meantime.
//
// Callbacks run on a coordinator goroutine while delivery is locked; they must
// not call Issue or Wait synchronously.
func (c *Coordinator[T]) Issue(ctx context.Context, op Operation[T], cb Callbacks[T]) (Token, error) {
	if op == nil {
		return 0, errors.New("operation is nil")
	}

	c.deliverMu.Lock()
	token := Token(c.current.Add(1))
	opCtx, cancel := c.supersede(ctx, token)
	c.deliverMu.Unlock()

	c.opts.metrics.ObserveIssued()
	c.opts.logger.Debug("request issued", zap.Uint64("token", uint64(token)))

	if cb.OnStart != nil {
		cb.OnStart(token)
	}

	results, err := op(opCtx)
	if err == nil && results == nil {
		err = errors.New("operation returned no result channel")
	}
	if err != nil {
		cancel()
		c.opts.metrics.ObserveStartFailed()
		return token, fmt.Errorf("start request %d: %w", token, err)
	}

	c.inflight.Add(1)
	go c.await(token, results, cancel, cb)

	return token, nil
}

// Current returns the token of the most recent Issue call, or zero if none.
func (c *Coordinator[T]) Current() Token {
	return Token(c.current.Load())
}

func (c *Coordinator[T]) IsCurrent(token Token) bool {
	return token != 0 && token == c.Current()
}

// Wait blocks until every started operation has settled and been either
// delivered or discarded.
func (c *Coordinator[T]) Wait() {
	c.inflight.Wait()
}

func (c *Coordinator[T]) await(token Token, results <-chan Result[T], cancel context.CancelFunc, cb Callbacks[T]) {
	defer c.inflight.Done()
	defer cancel()

	result, ok := <-results
	if !ok {
		result = Result[T]{Err: ErrNoResult}
	}

	c.deliver(token, result, cb)
}

func (c *Coordinator[T]) deliver(token Token, result Result[T], cb Callbacks[T]) {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	current := c.Current()
	if token != current {
		c.opts.metrics.ObserveDiscarded()
		c.opts.logger.Debug("request superseded, discarding outcome",
			zap.Uint64("token", uint64(token)),
			zap.Uint64("current", uint64(current)),
			zap.Bool("failed", result.Err != nil),
		)
		return
	}

	if result.Err != nil {
		c.opts.metrics.ObserveDelivered(metrics.OutcomeFailure)
		c.opts.logger.Debug("request failed", zap.Uint64("token", uint64(token)), zap.Error(result.Err))
		if cb.OnFailure != nil {
			cb.OnFailure(result.Err)
		}
		return
	}

	c.opts.metrics.ObserveDelivered(metrics.OutcomeSuccess)
	c.opts.logger.Debug("request succeeded", zap.Uint64("token", uint64(token)))
	if cb.OnSuccess != nil {
		cb.OnSuccess(result.Value)
	}
}

// supersede must be called with deliverMu held. Only a predecessor with a
// lower token is ever cancelled.
func (c *Coordinator[T]) supersede(ctx context.Context, token Token) (context.Context, context.CancelFunc) {
	if !c.opts.cancelSuperseded {
		return ctx, func() {}
	}

	opCtx, cancel := context.WithCancel(ctx)

	previous, previousToken := c.cancelPrev, c.cancelToken
	c.cancelPrev, c.cancelToken = cancel, token

	if previous != nil && previousToken < token {
		previous()
	}

	return opCtx, cancel
}

// Async adapts a blocking function into an Operation that runs on its own goroutine.
func Async[T any](fn func(ctx context.Context) (T, error)) Operation[T] {
	return func(ctx context.Context) (<-chan Result[T], error) {
		results := make(chan Result[T], 1)
		go func() {
			value, err := fn(ctx)
			results <- Result[T]{Value: value, Err: err}
		}()

		return results, nil
	}
}
