// Package database holds the process-wide connection handle shared by all repositories.
package database

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Acquire after Close.
var ErrClosed = errors.New("database handle closed")

// Dialer establishes a new connection.
type Dialer[T any] func(ctx context.Context) (T, error)

// Closer releases a connection returned by a Dialer.
type Closer[T any] func(ctx context.Context, conn T) error

// Acquirer returns a ready connection. Repositories depend on this rather than on a Handle.
type Acquirer[T any] interface {
	Acquire(ctx context.Context) (T, error)
}

// Handle lazily dials a connection on first use and memoizes it for the
// lifetime of the process. Callers that arrive while the first dial is in
// flight wait for it instead of dialing again. A failed dial is not memoized.
type Handle[T any] struct {
	mu      sync.Mutex
	dial    Dialer[T]
	closeFn Closer[T]
	conn    T
	ready   bool
	closed  bool
}

// NewHandle returns a Handle that dials with dial. closeFn may be nil.
func NewHandle[T any](dial Dialer[T], closeFn Closer[T]) *Handle[T] {
	return &Handle[T]{dial: dial, closeFn: closeFn}
}

// Ready returns a Handle already holding conn. Close is a no-op for it.
func Ready[T any](conn T) *Handle[T] {
	return &Handle[T]{conn: conn, ready: true}
}

// Acquire returns the memoized connection, dialing it first if needed.
func (h *Handle[T]) Acquire(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if h.closed {
		return zero, ErrClosed
	}
	if h.ready {
		return h.conn, nil
	}
	conn, err := h.dial(ctx)
	if err != nil {
		return zero, err
	}
	h.conn = conn
	h.ready = true
	return conn, nil
}

// Close releases the connection if one was established. Later Acquire calls fail with ErrClosed.
func (h *Handle[T]) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if !h.ready || h.closeFn == nil {
		return nil
	}
	var zero T
	conn := h.conn
	h.conn, h.ready = zero, false
	return h.closeFn(ctx, conn)
}
