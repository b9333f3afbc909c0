// Copyright 2014 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package txpool

import (
	"context"
	"sync"
)

// Future is the handle returned by Submit. It resolves exactly once, either
// synchronously from the validation fast path or later from the
// transaction's lifecycle ending via batchRemove or the reaper.
//
// There is no cancellation primitive: a caller that stops waiting leaks the
// notify slot until the pool eventually fires it into this (still allocated
// but unread) Future, which is the documented, tolerated behavior.
type Future struct {
	done   chan struct{}
	once   sync.Once
	result SubmitResult
}

// newFuture returns an unresolved Future.
func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// resolve completes the future with result. Only the first call has any
// effect: only the first resolution of a given transaction counts.
func (f *Future) resolve(result SubmitResult) {
	f.once.Do(func() {
		f.result = result
		close(f.done)
	})
}

// Await blocks until the future resolves or ctx is done, whichever comes
// first. A context cancellation does not cancel the underlying submission;
// it only stops this particular caller from waiting on it.
func (f *Future) Await(ctx context.Context) (SubmitResult, error) {
	select {
	case <-f.done:
		return f.result, nil
	case <-ctx.Done():
		return SubmitResult{}, ctx.Err()
	}
}

// Done returns a channel closed once the future has resolved, for use in
// select statements alongside other events.
func (f *Future) Done() <-chan struct{} {
	return f.done
}
