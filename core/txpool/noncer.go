// Copyright 2019 The go-ethereum Authors
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

	"github.com/ledgerchain/node/common"
)

// PoolNonceChecker tracks the nonces of live, unconfirmed transactions
// resident in the pool, keyed by sender. Unlike go-ethereum's single
// next-executable-nonce noncer, the pool here has no gas-price ordering and
// must track the whole set of outstanding nonces per sender so that
// duplicate-nonce submissions and removals are symmetric.
type PoolNonceChecker struct {
	mu     sync.Mutex
	nonces map[common.Address]map[string]struct{}
}

// NewPoolNonceChecker returns an empty checker.
func NewPoolNonceChecker() *PoolNonceChecker {
	return &PoolNonceChecker{nonces: make(map[common.Address]map[string]struct{})}
}

// Insert records nonce as live for sender.
func (p *PoolNonceChecker) Insert(sender common.Address, nonce string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	set, ok := p.nonces[sender]
	if !ok {
		set = make(map[string]struct{})
		p.nonces[sender] = set
	}
	set[nonce] = struct{}{}
}

// Contains reports whether nonce is currently tracked as live for sender.
func (p *PoolNonceChecker) Contains(sender common.Address, nonce string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	set, ok := p.nonces[sender]
	if !ok {
		return false
	}
	_, ok = set[nonce]
	return ok
}

// Remove drops nonce from the live set for sender, removing the sender
// entirely once its set is empty.
func (p *PoolNonceChecker) Remove(sender common.Address, nonce string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	set, ok := p.nonces[sender]
	if !ok {
		return
	}
	delete(set, nonce)
	if len(set) == 0 {
		delete(p.nonces, sender)
	}
}

// BatchRemove drops every (sender, nonce) pair in results from the live set.
// Entries whose sender is unknown are silently ignored.
func (p *PoolNonceChecker) BatchRemove(results []CommitResult, senderOf func(common.Hash) (common.Address, bool)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, r := range results {
		sender, ok := senderOf(r.Hash)
		if !ok {
			continue
		}
		set, ok := p.nonces[sender]
		if !ok {
			continue
		}
		delete(set, r.Nonce)
		if len(set) == 0 {
			delete(p.nonces, sender)
		}
	}
}

// ledgerBatch is the nonce set committed in a single batch, retained so that
// RangedEvict can drop whole batches by id.
type ledgerBatch struct {
	nonces map[string]struct{}
}

// LedgerNonceChecker records the nonces of every committed batch, keyed by
// batch id, so that a resubmission of an already-chained nonce is rejected
// even after the transaction has left the live pool. Unlike PoolNonceChecker
// it is organized for ranged eviction: once a batch id falls behind the
// configured retention window, Evict drops it in one step.
type LedgerNonceChecker struct {
	mu      sync.Mutex
	sender  map[common.Address]map[string]uint64 // nonce -> batchID
	batches map[uint64]*ledgerBatch
}

// NewLedgerNonceChecker returns an empty checker.
func NewLedgerNonceChecker() *LedgerNonceChecker {
	return &LedgerNonceChecker{
		sender:  make(map[common.Address]map[string]uint64),
		batches: make(map[uint64]*ledgerBatch),
	}
}

// BatchInsert records that batchID committed nonces for sender.
func (l *LedgerNonceChecker) BatchInsert(batchID uint64, sender common.Address, nonces []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	set, ok := l.sender[sender]
	if !ok {
		set = make(map[string]uint64)
		l.sender[sender] = set
	}
	batch, ok := l.batches[batchID]
	if !ok {
		batch = &ledgerBatch{nonces: make(map[string]struct{})}
		l.batches[batchID] = batch
	}
	for _, n := range nonces {
		set[n] = batchID
		batch.nonces[n] = struct{}{}
	}
}

// Committed reports whether nonce has already been chained for sender.
func (l *LedgerNonceChecker) Committed(sender common.Address, nonce string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	set, ok := l.sender[sender]
	if !ok {
		return false
	}
	_, ok = set[nonce]
	return ok
}

// Evict drops every batch with id strictly below minBatchID, bounding the
// memory held for historical nonce tracking. This trades exact historical
// replay protection for older batches against unbounded growth; callers
// choose the retention window via minBatchID.
func (l *LedgerNonceChecker) Evict(minBatchID uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, batch := range l.batches {
		if id >= minBatchID {
			continue
		}
		for sender, set := range l.sender {
			for n := range batch.nonces {
				if set[n] == id {
					delete(set, n)
				}
			}
			if len(set) == 0 {
				delete(l.sender, sender)
			}
		}
		delete(l.batches, id)
	}
}
