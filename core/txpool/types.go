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

// Package txpool holds pending transactions in memory, validates and
// deduplicates them, and hands subsets to block sealers on demand.
package txpool

import (
	"sync"
	"sync/atomic"

	"github.com/ledgerchain/node/common"
	"github.com/ledgerchain/node/common/lru"
)

// TransactionStatus is the wire-visible outcome of validating or settling a
// transaction. Clients depend on these values, so existing members are never
// renumbered.
type TransactionStatus int

const (
	StatusNone TransactionStatus = iota
	StatusAlreadyInTxPool
	StatusTxPoolIsFull
	StatusNonceCheckFail
	StatusBlockLimitCheckFail
	StatusTransactionPoolTimeout
	StatusMalform
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusAlreadyInTxPool:
		return "already in tx pool"
	case StatusTxPoolIsFull:
		return "tx pool is full"
	case StatusNonceCheckFail:
		return "nonce check failed"
	case StatusBlockLimitCheckFail:
		return "block limit check failed"
	case StatusTransactionPoolTimeout:
		return "transaction pool timeout"
	case StatusMalform:
		return "malformed transaction"
	default:
		return "unknown status"
	}
}

// Source distinguishes how a transaction reached the pool. P2P-sourced and
// bulk-imported transactions bypass the capacity check so the network
// converges on a common set even when a single node's pool is saturated.
type Source int

const (
	SourceClient Source = iota
	SourceP2P
)

func (s Source) String() string {
	switch s {
	case SourceClient:
		return "client"
	case SourceP2P:
		return "p2p"
	default:
		return "unknown"
	}
}

// TransactionMetaData is the slim projection of a Transaction handed to a
// sealer: just enough to build a block body without copying the full
// transaction out of the pool.
type TransactionMetaData struct {
	Hash      common.Hash
	To        common.Address
	Attribute uint32
}

// CommitResult is what the consensus layer reports back for one transaction
// in a committed batch.
type CommitResult struct {
	Hash   common.Hash
	Nonce  string
	Status TransactionStatus
}

// SubmitResult is the terminal value a submission's Future resolves to.
type SubmitResult struct {
	TxHash common.Hash
	Status TransactionStatus
	Sender common.Address
	To     common.Address
	Nonce  string
}

// SubmitCallback is installed on a Transaction at submit time and consumed
// exactly once, either synchronously on rejection or asynchronously when the
// transaction's lifecycle ends.
type SubmitCallback func(SubmitResult)

// Transaction is the pool's resident record for a candidate transaction. It
// is shared by reference: the table holds the primary strong reference,
// sealers and the reaper observe and mutate it in place, and a snapshot is
// taken at remove time for the submit callback.
//
// Fields mutated after insertion (sealed, batchID, batchHash, synced,
// knownNodes, callback) are guarded by mu; hash, sender, to, nonce, systemTx
// and attribute are fixed at construction, and importTime is set at
// construction and restamped by SubmitTransaction before insertion; all of
// these are read without synchronization.
type Transaction struct {
	Hash       common.Hash
	Nonce      string
	Sender     common.Address
	To         common.Address
	ImportTime int64 // milliseconds
	SystemTx   bool
	Attribute  uint32

	mu         sync.Mutex
	sealed     bool
	batchID    uint64
	batchHash  common.Hash
	synced     bool
	knownNodes lru.BasicLRU[string, struct{}]
	callback   SubmitCallback

	invalid atomic.Bool
}

// NewTransaction constructs a pool-resident transaction record with the given
// import time in milliseconds.
func NewTransaction(hash common.Hash, nonce string, sender, to common.Address, importTimeMillis int64) *Transaction {
	return &Transaction{
		Hash:       hash,
		Nonce:      nonce,
		Sender:     sender,
		To:         to,
		ImportTime: importTimeMillis,
		knownNodes: lru.NewBasicLRU[string, struct{}](knownNodesCap),
	}
}

// Sealed reports whether a sealer currently holds the transaction.
func (t *Transaction) Sealed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sealed
}

// SealInfo returns the current sealed flag plus the batch identity, which is
// only meaningful while sealed.
func (t *Transaction) SealInfo() (sealed bool, batchID uint64, batchHash common.Hash) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sealed, t.batchID, t.batchHash
}

// Seal marks the transaction sealed under the given batch identity. Unseal
// always clears batchID/batchHash in the same step, keeping the two fields
// in lockstep.
func (t *Transaction) Seal(batchID uint64, batchHash common.Hash) {
	t.mu.Lock()
	t.sealed = true
	t.batchID = batchID
	t.batchHash = batchHash
	t.mu.Unlock()
}

// Unseal clears the sealed flag and the batch identity together.
func (t *Transaction) Unseal() {
	t.mu.Lock()
	t.sealed = false
	t.batchID = 0
	t.batchHash = common.Hash{}
	t.mu.Unlock()
}

// MatchesBatch reports whether the transaction is sealed under exactly the
// given batch identity.
func (t *Transaction) MatchesBatch(batchID uint64, batchHash common.Hash) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sealed && t.batchID == batchID && t.batchHash == batchHash
}

// MarkKnownBy records that peer already has this transaction, suppressing
// future gossip of it back to that peer. The set is an LRU bounded at
// knownNodesCap: a transaction gossiped to a very large swarm evicts its
// least-recently-confirmed peer rather than growing unbounded (see
// MemoryStorage.missedTxs for the symmetric peer-side cap, which uses a
// coarser whole-map reset since it tracks the inverse relationship).
func (t *Transaction) MarkKnownBy(peer string) {
	t.mu.Lock()
	t.knownNodes.Add(peer, struct{}{})
	t.mu.Unlock()
}

// KnownBy reports whether peer is known to already hold this transaction.
func (t *Transaction) KnownBy(peer string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.knownNodes.Contains(peer)
}

// SetSynced flags the transaction as broadcast to peers.
func (t *Transaction) SetSynced() {
	t.mu.Lock()
	t.synced = true
	t.mu.Unlock()
}

// Synced reports whether the transaction has been broadcast.
func (t *Transaction) Synced() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.synced
}

// InstallCallback installs the at-most-one pending completion function. It
// replaces any previous callback; callers are expected to install exactly
// once, at submit time.
func (t *Transaction) InstallCallback(cb SubmitCallback) {
	t.mu.Lock()
	t.callback = cb
	t.mu.Unlock()
}

// TakeCallback atomically removes and returns the installed callback, or nil
// if none is set or it was already consumed. Exactly one caller observes a
// non-nil result for a given transaction.
func (t *Transaction) TakeCallback() SubmitCallback {
	t.mu.Lock()
	cb := t.callback
	t.callback = nil
	t.mu.Unlock()
	return cb
}

// MarkInvalid sets the sticky invalid flag. Once set it is never cleared.
func (t *Transaction) MarkInvalid() { t.invalid.Store(true) }

// Invalid reports the sticky invalid flag.
func (t *Transaction) Invalid() bool { return t.invalid.Load() }

// knownNodesCap bounds the per-transaction peer-knowledge LRU.
const knownNodesCap = 4096
