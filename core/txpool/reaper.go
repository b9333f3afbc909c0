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
	"sync"
	"time"

	"github.com/ledgerchain/node/common/mclock"
	"github.com/ledgerchain/node/log"
)

// reapScanBudget bounds how many resident transactions a single reaper tick
// inspects, so a full pool under heavy load never stalls behind one sweep.
const reapScanBudget = 4096

// Reaper periodically sweeps a MemoryStorage for transactions that have sat
// past their expiration window, either unsealed or sealed under a batch the
// chain has moved past, evicting them in bounded batches.
// It is driven by an mclock.Clock rather than the system clock directly so
// tests can advance virtual time and assert on eviction without sleeping.
type Reaper struct {
	storage  *MemoryStorage
	clock    mclock.Clock
	interval time.Duration
	budget   int
	enabled  func() bool

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewReaper builds a Reaper around storage. config.TxsCleanUpSwitch, when
// set, is consulted on every tick; returning false skips that tick so a
// consensus node under heavy load can defer cleanup work.
func NewReaper(storage *MemoryStorage, clock mclock.Clock, config Config) *Reaper {
	return &Reaper{
		storage:  storage,
		clock:    clock,
		interval: config.CleanupInterval,
		budget:   reapScanBudget,
		enabled:  config.TxsCleanUpSwitch,
		stopCh:   make(chan struct{}),
	}
}

// Start launches the sweep loop on a background goroutine.
func (r *Reaper) Start() {
	r.wg.Add(1)
	go r.loop()
}

// Stop signals the sweep loop to exit and blocks until it has.
func (r *Reaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

func (r *Reaper) loop() {
	defer r.wg.Done()

	timer := r.clock.NewTimer(r.interval)
	defer timer.Stop()

	for {
		select {
		case <-timer.C():
			r.tick()
			timer.Reset(r.interval)
		case <-r.stopCh:
			return
		}
	}
}

func (r *Reaper) tick() {
	if r.enabled != nil && !r.enabled() {
		return
	}
	if n := r.storage.ReapExpired(r.budget); n > 0 {
		log.Debug("txpool reaper evicted expired transactions", "count", n)
	}
}
