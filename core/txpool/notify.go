// Copyright 2016 The go-ethereum Authors
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
	"sync/atomic"

	"github.com/ledgerchain/node/log"
)

// MaxRetryNotifyTime bounds how many times Notify retries a failed delivery
// before giving up and logging a warning.
const MaxRetryNotifyTime = 5

// NotifyChannel is a one-shot pipe from the pool to a higher layer that
// wants to know the current unsealed count, such as a consensus engine
// deciding whether to propose a new batch.
type NotifyChannel interface {
	// Notify delivers count to the channel, invoking done once delivery
	// either succeeds or is abandoned after MaxRetryNotifyTime attempts.
	Notify(count uint64, done func(ok bool))
}

// FuncNotifyChannel adapts a plain delivery function, which may fail
// transiently, into a NotifyChannel with bounded retry.
type FuncNotifyChannel struct {
	deliver func(count uint64) error
	stopped atomic.Bool
}

// NewFuncNotifyChannel wraps deliver, which should return an error only on
// a transient failure; permanent failures should simply log and return nil
// so the retry budget isn't wasted on them.
func NewFuncNotifyChannel(deliver func(count uint64) error) *FuncNotifyChannel {
	return &FuncNotifyChannel{deliver: deliver}
}

// Stop aborts any retry chains started before this call; in-flight
// goroutines observe the stopped flag on their next attempt and give up
// without invoking done(true).
func (c *FuncNotifyChannel) Stop() {
	c.stopped.Store(true)
}

func (c *FuncNotifyChannel) Notify(count uint64, done func(ok bool)) {
	c.retry(count, 0, done)
}

func (c *FuncNotifyChannel) retry(count uint64, attempt int, done func(ok bool)) {
	if c.stopped.Load() {
		return
	}
	if err := c.deliver(count); err != nil {
		if attempt+1 >= MaxRetryNotifyTime {
			log.Warn("notify channel exhausted retries", "count", count, "attempts", attempt+1, "err", err)
			if done != nil {
				done(false)
			}
			return
		}
		c.retry(count, attempt+1, done)
		return
	}
	if done != nil {
		done(true)
	}
}
