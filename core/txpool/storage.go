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
	"sync"
	"sync/atomic"
	"time"

	"github.com/ledgerchain/node/common"
	"github.com/ledgerchain/node/common/mclock"
	"github.com/ledgerchain/node/event"
	"github.com/ledgerchain/node/log"
	"github.com/ledgerchain/node/metrics"
)

// BatchHeader carries the identity of a candidate or committed block.
type BatchHeader struct {
	BatchID   uint64
	BatchHash common.Hash
}

// MemoryStorage is the pool's core: an indexed transaction table plus the
// mutex discipline and state transitions that drive a transaction from
// submission to removal. It is the single collaborator that owns txsTable;
// every other component (Validator, the nonce checkers, NotifyChannel) is
// consulted through a narrow interface and never reaches back into the
// table directly.
type MemoryStorage struct {
	config  Config
	clock   mclock.Clock     // time source for expiration checks; swapped for mclock.Simulated in tests
	metrics *metrics.Registry // optional; nil-safe, counters/gauges simply go unrecorded when unset

	mu            upgradableMu // guards txsTable
	txsTable      map[common.Hash]*Transaction
	sealedCounter atomic.Int64 // |{t : t.sealed}|, adjusted without requiring the exclusive lock

	missedMu  sync.RWMutex // guards missedTxs; acquired only after mu
	missedTxs map[common.Hash]struct{}

	blockNumber            uint64
	blockNumberUpdatedTime time.Time

	tpsMu            sync.Mutex
	tpsStatStartTime time.Time
	onChainTxsCount  uint64
	tpsRunning       bool

	validator    Validator
	poolNonces   *PoolNonceChecker
	ledgerNonces *LedgerNonceChecker
	notifier     NotifyChannel

	unsealedFeed event.Feed // fires the new unsealed count after each mutation

	stopOnce sync.Once
	stopCh   chan struct{}
	running  atomic.Bool
}

// NewMemoryStorage constructs an empty pool around the given collaborators,
// using clock as the time source for expiration checks. A nil clock defaults
// to the system clock; tests pass an mclock.Simulated to drive expiry
// deterministically.
func NewMemoryStorage(config Config, validator Validator, poolNonces *PoolNonceChecker, ledgerNonces *LedgerNonceChecker, notifier NotifyChannel, clock mclock.Clock) *MemoryStorage {
	if clock == nil {
		clock = mclock.System{}
	}
	return &MemoryStorage{
		config:       config.sanitize(),
		clock:        clock,
		txsTable:     make(map[common.Hash]*Transaction),
		missedTxs:    make(map[common.Hash]struct{}),
		validator:    validator,
		poolNonces:   poolNonces,
		ledgerNonces: ledgerNonces,
		notifier:     notifier,
		stopCh:       make(chan struct{}),
	}
}

// nowMillis returns the current time in milliseconds according to the
// pool's clock, for comparison against Transaction.ImportTime.
func (s *MemoryStorage) nowMillis() int64 {
	return int64(s.clock.Now()) / int64(time.Millisecond)
}

// SetMetrics attaches a Registry for the pool to report through. Called once
// after construction; nil leaves the pool silently unmetered.
func (s *MemoryStorage) SetMetrics(m *metrics.Registry) {
	s.metrics = m
}

// Start marks the pool as serving traffic. It does not spawn a reaper; wire
// one up separately via NewReaper so tests can drive expiry deterministically.
func (s *MemoryStorage) Start() {
	s.running.Store(true)
}

// Stop marks the pool as no longer accepting submissions, aborts any
// in-flight notify retry chains when the notifier has a Stop method, and
// resolves the Future of every still-resident transaction with
// StatusMalform.
func (s *MemoryStorage) Stop() {
	s.stopOnce.Do(func() {
		s.running.Store(false)
		close(s.stopCh)
		if st, ok := s.notifier.(interface{ Stop() }); ok {
			st.Stop()
		}
		s.mu.RLock()
		pending := make([]*Transaction, 0, len(s.txsTable))
		for _, tx := range s.txsTable {
			pending = append(pending, tx)
		}
		s.mu.RUnlock()
		for _, tx := range pending {
			if cb := tx.TakeCallback(); cb != nil {
				cb(SubmitResult{TxHash: tx.Hash, Status: StatusMalform, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
			}
		}
	})
}

// SubscribeUnsealedCount registers ch to receive the unsealed-entry count
// after every mutation that can change it.
func (s *MemoryStorage) SubscribeUnsealedCount(ch chan<- uint64) event.Subscription {
	return s.unsealedFeed.Subscribe(ch)
}

// --- submission path --------------------------------------------------------

// SubmitTransaction is the primary client entry point. It returns a Future
// that resolves once the transaction's lifecycle reaches a terminal state,
// and the status observed synchronously at submission time (StatusNone if
// admitted).
func (s *MemoryStorage) SubmitTransaction(tx *Transaction, source Source) (*Future, TransactionStatus) {
	future := newFuture()

	if !s.running.Load() {
		future.resolve(SubmitResult{TxHash: tx.Hash, Status: StatusMalform, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		return future, StatusMalform
	}

	s.mu.RLock()
	_, known := s.txsTable[tx.Hash]
	size := len(s.txsTable)
	s.mu.RUnlock()

	if known {
		future.resolve(SubmitResult{TxHash: tx.Hash, Status: StatusAlreadyInTxPool, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		s.recordSubmit(source, "duplicate")
		return future, StatusAlreadyInTxPool
	}
	if source == SourceClient && size >= s.config.PoolLimit {
		future.resolve(SubmitResult{TxHash: tx.Hash, Status: StatusTxPoolIsFull, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		s.recordSubmit(source, "pool_full")
		return future, StatusTxPoolIsFull
	}
	if status := s.validator.Verify(tx); status != StatusNone {
		future.resolve(SubmitResult{TxHash: tx.Hash, Status: status, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		s.recordSubmit(source, "rejected")
		return future, status
	}

	tx.InstallCallback(func(result SubmitResult) { future.resolve(result) })

	s.mu.Lock()
	if _, known := s.txsTable[tx.Hash]; known {
		s.mu.Unlock()
		if cb := tx.TakeCallback(); cb != nil {
			cb(SubmitResult{TxHash: tx.Hash, Status: StatusAlreadyInTxPool, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		}
		s.recordSubmit(source, "duplicate")
		return future, StatusAlreadyInTxPool
	}
	tx.ImportTime = s.nowMillis()
	s.txsTable[tx.Hash] = tx
	s.mu.Unlock()

	s.poolNonces.Insert(tx.Sender, tx.Nonce)
	s.notifyUnsealedTxsSize()
	s.recordSubmit(source, "accepted")

	return future, StatusNone
}

// recordSubmit is a nil-safe metrics hook; no-op when SetMetrics was never
// called.
func (s *MemoryStorage) recordSubmit(source Source, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.Submitted.WithLabelValues(source.String(), outcome).Inc()
}

// --- enforced insertion (consensus path) -------------------------------------

// BatchVerifyAndSubmitTransaction is called when a peer proposal references
// transactions not already known to this node. The whole batch is processed
// under the exclusive lock, and the result is true only if every tx was
// accepted. A false result does not undo the txs of the batch that were
// accepted; rolling back the proposal is left to the caller.
func (s *MemoryStorage) BatchVerifyAndSubmitTransaction(header BatchHeader, txs []*Transaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := true
	for _, tx := range txs {
		if !s.enforceSubmitTransactionLocked(header, tx) {
			ok = false
		}
	}
	return ok
}

// enforceSubmitTransactionLocked implements the per-tx enforced-insertion logic. Caller
// must hold s.mu exclusively.
func (s *MemoryStorage) enforceSubmitTransactionLocked(header BatchHeader, tx *Transaction) bool {
	if s.ledgerNonces != nil && s.ledgerNonces.Committed(tx.Sender, tx.Nonce) {
		return false
	}

	existing, present := s.txsTable[tx.Hash]
	if !present {
		tx.Seal(header.BatchID, header.BatchHash)
		s.txsTable[tx.Hash] = tx
		s.sealedCounter.Add(1)
		s.poolNonces.Insert(tx.Sender, tx.Nonce)
		return true
	}

	sealed, batchID, batchHash := existing.SealInfo()
	switch {
	case !sealed:
		existing.Seal(header.BatchID, header.BatchHash)
		s.sealedCounter.Add(1)
		return true
	case batchID == header.BatchID && batchHash == header.BatchHash:
		return true
	default:
		return false
	}
}

// --- fetch & seal path ---------------------------------------------------------

// BatchFetchTxs fills txsList and sysTxsList with candidates up to limit
// combined entries, marking each returned transaction sealed.
func (s *MemoryStorage) BatchFetchTxs(txsList, sysTxsList *[]TransactionMetaData, limit int, avoid map[common.Hash]struct{}, avoidDuplicate bool) {
	if s.metrics != nil {
		start := time.Now()
		defer func() { s.metrics.FetchLatency.Observe(time.Since(start).Seconds()) }()
	}
	now := s.nowMillis()
	var toInvalidate []common.Hash

	s.mu.RLock()
	for hash, tx := range s.txsTable {
		if len(*txsList)+len(*sysTxsList) >= limit {
			break
		}
		if tx == nil || tx.Invalid() {
			continue
		}
		sealed := tx.Sealed()
		if avoidDuplicate && sealed {
			continue
		}
		if _, skip := avoid[hash]; skip {
			continue
		}
		if now > tx.ImportTime+s.config.TxsExpiration.Milliseconds() {
			toInvalidate = append(toInvalidate, hash)
			continue
		}
		if status := s.validator.SubmittedToChain(tx, s.currentBlock()); status != StatusNone {
			toInvalidate = append(toInvalidate, hash)
			continue
		}

		meta := TransactionMetaData{Hash: hash, To: tx.To, Attribute: tx.Attribute}
		if tx.SystemTx {
			*sysTxsList = append(*sysTxsList, meta)
		} else {
			*txsList = append(*txsList, meta)
		}
		if !sealed {
			tx.Seal(0, common.Hash{})
			s.bumpSealedLocked(1)
		}
	}
	if len(toInvalidate) > 0 {
		s.mu.Upgrade()
		s.removeInvalidTxsLocked(toInvalidate)
		s.mu.Unlock()
		s.notifyUnsealedTxsSize()
	} else {
		s.mu.RUnlock()
	}
}

// bumpSealedLocked adjusts the sealed counter while only the read lock is
// held, matching the fetch path's use of an upgradable lock for
// disjoint-key mutation: since Go's RWMutex permits many concurrent
// readers, the counter itself is an atomic so concurrent adjustments from
// readers holding only RLock stay race-free.
func (s *MemoryStorage) bumpSealedLocked(delta int) {
	s.sealedCounter.Add(int64(delta))
}

// --- seal-flag transitions -----------------------------------------------------

// BatchMarkTxs applies sealFlag uniformly to the given hashes. Sealing
// acquires the shared lock (disjoint-key mutation); unsealing acquires the
// exclusive lock to avoid double-unseal races between concurrent rollbacks.
func (s *MemoryStorage) BatchMarkTxs(hashes []common.Hash, batchID uint64, batchHash common.Hash, sealFlag bool) {
	if sealFlag {
		s.mu.RLock()
		for _, h := range hashes {
			s.markOne(h, batchID, batchHash, true)
		}
		s.mu.RUnlock()
	} else {
		s.mu.Lock()
		for _, h := range hashes {
			s.markOne(h, batchID, batchHash, false)
		}
		s.mu.Unlock()
	}
	s.notifyUnsealedTxsSize()
}

// markOne applies sealFlag to hash. When sealFlag is true the batch identity
// is written unconditionally, independent of the tx's prior sealed state:
// BatchFetchTxs pre-seals with a placeholder (0, zero-hash) identity, and this
// is where the sealer's real batchID/batchHash finally lands. Only the
// sealed-counter bump is gated on the prior state actually changing.
func (s *MemoryStorage) markOne(hash common.Hash, batchID uint64, batchHash common.Hash, sealFlag bool) {
	tx, ok := s.txsTable[hash]
	if !ok {
		log.Debug("batchMarkTxs: unknown hash", "hash", hash)
		return
	}
	sealed, curBatch, curHash := tx.SealInfo()
	if !sealFlag && sealed && (curBatch != batchID || curHash != batchHash) {
		// Stale unseal request: another proposal already re-sealed this tx.
		return
	}
	if sealFlag {
		tx.Seal(batchID, batchHash)
		if !sealed {
			s.bumpSealedLocked(1)
		}
	} else if sealed {
		tx.Unseal()
		s.bumpSealedLocked(-1)
	}
}

// BatchMarkAllTxs applies flag to every resident transaction.
func (s *MemoryStorage) BatchMarkAllTxs(flag bool) {
	s.mu.Lock()
	for _, tx := range s.txsTable {
		sealed := tx.Sealed()
		if flag && !sealed {
			tx.Seal(s.blockNumber, common.Hash{})
			s.bumpSealedLocked(1)
		} else if !flag && sealed {
			tx.Unseal()
			s.bumpSealedLocked(-1)
		}
	}
	s.mu.Unlock()
	s.notifyUnsealedTxsSize()
}

// --- removal path ---------------------------------------------------------------

// BatchRemove fires once per committed batch: it deletes every result's
// hash from the table, forwards nonces to both nonce checkers, and resolves
// each removed transaction's submit callback exactly once.
func (s *MemoryStorage) BatchRemove(batchID uint64, results []CommitResult) {
	type removed struct {
		tx     *Transaction
		result CommitResult
	}
	type committedNonce struct {
		sender common.Address
		nonce  string
	}

	s.mu.Lock()
	s.blockNumberUpdatedTime = time.Now()

	var removedTxs []removed
	var nonces []committedNonce
	for _, r := range results {
		tx, ok := s.removeWithoutLockLocked(r.Hash)
		if ok {
			nonces = append(nonces, committedNonce{sender: tx.Sender, nonce: tx.Nonce})
			removedTxs = append(removedTxs, removed{tx: tx, result: r})
		} else if r.Nonce != "" {
			// Orphan commit: the tx was never resident here, so there is no
			// sender to attach; the ledger checker still learns of the nonce
			// under the zero address.
			nonces = append(nonces, committedNonce{nonce: r.Nonce})
		}
	}
	if batchID > s.blockNumber {
		s.blockNumber = batchID
	}
	empty := len(s.txsTable) == 0
	s.mu.Unlock()

	if s.ledgerNonces != nil {
		for _, n := range nonces {
			s.ledgerNonces.BatchInsert(batchID, n.sender, []string{n.nonce})
		}
	}
	if s.poolNonces != nil {
		for _, rt := range removedTxs {
			s.poolNonces.Remove(rt.tx.Sender, rt.tx.Nonce)
		}
	}

	for _, rt := range removedTxs {
		status := rt.result.Status
		if status == StatusNone {
			status = StatusNonceCheckFail // committed: no longer resubmittable
		}
		if cb := rt.tx.TakeCallback(); cb != nil {
			cb(SubmitResult{TxHash: rt.tx.Hash, Status: status, Sender: rt.tx.Sender, To: rt.tx.To, Nonce: rt.tx.Nonce})
		}
	}
	if s.metrics != nil && len(removedTxs) > 0 {
		s.metrics.Evicted.WithLabelValues("committed").Add(float64(len(removedTxs)))
	}

	s.recordTPS(len(removedTxs), empty)
	s.notifyUnsealedTxsSize()
}

// removeWithoutLockLocked deletes hash from the table. Caller must hold the
// exclusive lock.
func (s *MemoryStorage) removeWithoutLockLocked(hash common.Hash) (*Transaction, bool) {
	tx, ok := s.txsTable[hash]
	if !ok {
		return nil, false
	}
	if tx.Sealed() {
		s.bumpSealedLocked(-1)
	}
	delete(s.txsTable, hash)
	return tx, true
}

// removeInvalidTxsLocked deletes every hash in hashes, marking each
// transaction invalid first and resolving its callback with a timeout
// status. Caller must hold the exclusive lock; the callbacks run while that
// lock is still held.
func (s *MemoryStorage) removeInvalidTxsLocked(hashes []common.Hash) {
	for _, h := range hashes {
		tx, ok := s.txsTable[h]
		if !ok {
			continue
		}
		tx.MarkInvalid()
		if tx.Sealed() {
			s.bumpSealedLocked(-1)
		}
		delete(s.txsTable, h)
		s.poolNonces.Remove(tx.Sender, tx.Nonce)
		if cb := tx.TakeCallback(); cb != nil {
			cb(SubmitResult{TxHash: tx.Hash, Status: StatusTransactionPoolTimeout, Sender: tx.Sender, To: tx.To, Nonce: tx.Nonce})
		}
		if s.metrics != nil {
			s.metrics.Evicted.WithLabelValues("expired").Inc()
		}
	}
}

// ReapExpired scans up to budget resident transactions and evicts the ones
// past their configured expiration — unsealed transactions always, and
// sealed ones whose batch has fallen behind the current block — resolving
// each one's submit callback with StatusTransactionPoolTimeout. It returns
// the number of transactions evicted. Map iteration order is unspecified, so a
// budget smaller than the table size inspects an arbitrary subset per call;
// the reaper relies on being called repeatedly rather than on any one call
// covering the whole table.
func (s *MemoryStorage) ReapExpired(budget int) int {
	now := s.nowMillis()
	var expired []common.Hash

	s.mu.RLock()
	scanned := 0
	for hash, tx := range s.txsTable {
		if scanned >= budget {
			break
		}
		scanned++
		if tx.Invalid() {
			continue
		}
		// A sealed transaction is only exempt from expiry while its batch is
		// still current; one sealed under a batch the chain has since moved
		// past (its proposal superseded, never committed or unsealed) is
		// stale and must still be reaped.
		if sealed, batchID, _ := tx.SealInfo(); sealed && batchID >= s.blockNumber {
			continue
		}
		if now > tx.ImportTime+s.config.TxsExpiration.Milliseconds() {
			expired = append(expired, hash)
		}
	}

	if len(expired) == 0 {
		s.mu.RUnlock()
		return 0
	}
	s.mu.Upgrade()
	s.removeInvalidTxsLocked(expired)
	s.mu.Unlock()
	s.notifyUnsealedTxsSize()
	if s.metrics != nil {
		s.metrics.ReaperSweeps.Inc()
	}
	return len(expired)
}

// --- peer-knowledge filter ------------------------------------------------------

// FilterUnknownTxs returns the subset of hashes this node does not have,
// updating knownNodes for hashes it does have and suppressing duplicate
// gossip requests for ones it has already recorded as missed.
func (s *MemoryStorage) FilterUnknownTxs(hashes []common.Hash, peer string) []common.Hash {
	var unknown []common.Hash

	s.mu.RLock()
	for _, h := range hashes {
		if tx, ok := s.txsTable[h]; ok {
			tx.MarkKnownBy(peer)
			continue
		}
		s.missedMu.Lock()
		if _, missed := s.missedTxs[h]; !missed {
			unknown = append(unknown, h)
			s.missedTxs[h] = struct{}{}
		}
		s.missedMu.Unlock()
	}
	s.mu.RUnlock()

	s.missedMu.Lock()
	if len(s.missedTxs) >= s.config.PoolLimit {
		s.missedTxs = make(map[common.Hash]struct{})
	}
	s.missedMu.Unlock()

	return unknown
}

// --- remaining pool API ------------------------------------------------------

// UnsealedTxsSize returns |txsTable| - sealedTxsSize.
func (s *MemoryStorage) UnsealedTxsSize() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unsealedTxsSizeLocked()
}

func (s *MemoryStorage) unsealedTxsSizeLocked() int {
	size := len(s.txsTable) - int(s.sealedCounter.Load())
	if size < 0 {
		// Counter drift: a bug elsewhere let sealedTxsSize outrun the
		// table. Log and report zero rather than panic; the counter itself
		// is left unchanged.
		log.Error("sealed counter drift detected", "table", len(s.txsTable), "sealed", s.sealedCounter.Load())
		return 0
	}
	return size
}

// GetTxsHash returns up to limit resident hashes, for debug inspection.
func (s *MemoryStorage) GetTxsHash(limit int) []common.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hashes := make([]common.Hash, 0, limit)
	for h := range s.txsTable {
		if len(hashes) >= limit {
			break
		}
		hashes = append(hashes, h)
	}
	return hashes
}

// BatchVerifyProposal returns the hashes referenced by a proposal that are
// missing from this node's pool.
func (s *MemoryStorage) BatchVerifyProposal(hashes []common.Hash) []common.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var missing []common.Hash
	for _, h := range hashes {
		if _, ok := s.txsTable[h]; !ok {
			missing = append(missing, h)
		}
	}
	return missing
}

// BatchImportTxs bulk-imports P2P-sourced transactions, skipping the pool
// capacity check so the network can converge on a common set.
func (s *MemoryStorage) BatchImportTxs(txs []*Transaction) {
	s.mu.Lock()
	for _, tx := range txs {
		if _, ok := s.txsTable[tx.Hash]; ok {
			continue
		}
		s.txsTable[tx.Hash] = tx
		s.poolNonces.Insert(tx.Sender, tx.Nonce)
	}
	s.mu.Unlock()
	s.notifyUnsealedTxsSize()
}

// Clear empties the pool. A structural operation: exclusive lock.
func (s *MemoryStorage) Clear() {
	s.mu.Lock()
	s.txsTable = make(map[common.Hash]*Transaction)
	s.sealedCounter.Store(0)
	s.mu.Unlock()

	s.missedMu.Lock()
	s.missedTxs = make(map[common.Hash]struct{})
	s.missedMu.Unlock()

	s.notifyUnsealedTxsSize()
}

// currentBlock returns the last committed batch id.
func (s *MemoryStorage) currentBlock() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blockNumber
}

// notifyUnsealedTxsSize dispatches the current unsealed count to the
// NotifyChannel and to any subscribers on unsealedFeed. Must be called with
// no lock held: the notifier and feed subscribers never run under the pool's
// lock.
func (s *MemoryStorage) notifyUnsealedTxsSize() {
	count := uint64(s.UnsealedTxsSize())
	s.unsealedFeed.Send(count)
	if s.notifier != nil {
		s.notifier.Notify(count, nil)
	}
	if s.metrics != nil {
		s.metrics.Unsealed.Set(float64(count))
		s.mu.RLock()
		s.metrics.Resident.Set(float64(len(s.txsTable)))
		s.mu.RUnlock()
	}
}

// recordTPS implements the rolling TPS meter: emptyAfterRemoval is sampled
// by the caller while still holding the exclusive lock, so the reset
// decision never races a concurrent insert.
func (s *MemoryStorage) recordTPS(removedCount int, emptyAfterRemoval bool) {
	if removedCount == 0 {
		return
	}
	s.tpsMu.Lock()
	defer s.tpsMu.Unlock()

	if !s.tpsRunning {
		s.tpsStatStartTime = time.Now()
		s.tpsRunning = true
	}
	s.onChainTxsCount += uint64(removedCount)

	if emptyAfterRemoval && s.tpsRunning {
		elapsed := time.Since(s.tpsStatStartTime)
		if elapsed > 0 {
			tps := float64(s.onChainTxsCount) / elapsed.Seconds()
			log.Info("txpool tps sample", "tps", tps, "count", s.onChainTxsCount, "elapsed", elapsed)
		}
		s.onChainTxsCount = 0
		s.tpsRunning = false
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
