// Copyright 2023 The go-ethereum Authors
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
	"github.com/ledgerchain/node/common/mclock"
	"github.com/ledgerchain/node/event"
	"github.com/ledgerchain/node/metrics"
)

// TxPool is the node-facing façade over a MemoryStorage: it owns the
// background reaper goroutine and the subscription scope that ties every
// subscriber's lifetime to the pool's, and exposes the surface callers
// actually use. MemoryStorage itself stays unexported-collaborator-shaped so
// every caller goes through this type rather than reaching into internals.
type TxPool struct {
	storage       *MemoryStorage
	reaper        *Reaper
	metricsServer *metrics.Server

	subs event.SubscriptionScope

	closeOnce sync.Once
}

// New constructs and starts a transaction pool: the in-memory store and its
// background reaper, wired from config and the given collaborators. If
// config.MetricsAddress is set, metrics are additionally served over HTTP.
func New(config Config, validator Validator, poolNonces *PoolNonceChecker, ledgerNonces *LedgerNonceChecker, notifier NotifyChannel) *TxPool {
	storage := NewMemoryStorage(config, validator, poolNonces, ledgerNonces, notifier, mclock.System{})

	reg := metrics.New(config.MetricsNamespace)
	storage.SetMetrics(reg)
	storage.Start()

	reaper := NewReaper(storage, mclock.System{}, config)
	reaper.Start()

	return &TxPool{
		storage:       storage,
		reaper:        reaper,
		metricsServer: metrics.Setup(config.MetricsAddress, reg),
	}
}

// Close stops the reaper and the store, unblocking anyone still awaiting a
// Future with a terminal StatusMalform result, tears down every tracked
// subscription, and shuts down the metrics server if one was started.
func (p *TxPool) Close() error {
	p.closeOnce.Do(func() {
		p.reaper.Stop()
		p.storage.Stop()
		p.subs.Close()
		p.metricsServer.Close()
	})
	return nil
}

// Submit hands tx to the pool, returning a Future that resolves once its
// lifecycle reaches a terminal state, and the status observed synchronously
// at submission time.
func (p *TxPool) Submit(tx *Transaction, source Source) (*Future, TransactionStatus) {
	return p.storage.SubmitTransaction(tx, source)
}

// SubscribeUnsealedCount registers ch for the unsealed-count feed, tracking
// the subscription so it is torn down on Close even if the caller forgets to
// unsubscribe.
func (p *TxPool) SubscribeUnsealedCount(ch chan<- uint64) event.Subscription {
	return p.subs.Track(p.storage.SubscribeUnsealedCount(ch))
}

// UnsealedTxsSize reports the number of resident transactions not currently
// held by a sealer.
func (p *TxPool) UnsealedTxsSize() int { return p.storage.UnsealedTxsSize() }

// GetTxsHash returns up to limit resident hashes, for debug inspection.
func (p *TxPool) GetTxsHash(limit int) []common.Hash { return p.storage.GetTxsHash(limit) }

// BatchFetchTxs fills txsList and sysTxsList for a sealer, as MemoryStorage
// does; see its doc for the full contract.
func (p *TxPool) BatchFetchTxs(txsList, sysTxsList *[]TransactionMetaData, limit int, avoid map[common.Hash]struct{}, avoidDuplicate bool) {
	p.storage.BatchFetchTxs(txsList, sysTxsList, limit, avoid, avoidDuplicate)
}

// BatchMarkTxs applies sealFlag to the given hashes.
func (p *TxPool) BatchMarkTxs(hashes []common.Hash, batchID uint64, batchHash common.Hash, sealFlag bool) {
	p.storage.BatchMarkTxs(hashes, batchID, batchHash, sealFlag)
}

// BatchMarkAllTxs applies flag to every resident transaction.
func (p *TxPool) BatchMarkAllTxs(flag bool) { p.storage.BatchMarkAllTxs(flag) }

// BatchRemove retires a committed batch, resolving every removed
// transaction's submit callback.
func (p *TxPool) BatchRemove(batchID uint64, results []CommitResult) {
	p.storage.BatchRemove(batchID, results)
}

// BatchVerifyAndSubmitTransaction enforces acceptance of a peer's proposed
// batch, inserting any transactions this node did not already have.
func (p *TxPool) BatchVerifyAndSubmitTransaction(header BatchHeader, txs []*Transaction) bool {
	return p.storage.BatchVerifyAndSubmitTransaction(header, txs)
}

// BatchVerifyProposal returns the hashes a proposal references that this
// node's pool does not have.
func (p *TxPool) BatchVerifyProposal(hashes []common.Hash) []common.Hash {
	return p.storage.BatchVerifyProposal(hashes)
}

// BatchImportTxs bulk-imports P2P-sourced transactions, bypassing the
// capacity check.
func (p *TxPool) BatchImportTxs(txs []*Transaction) { p.storage.BatchImportTxs(txs) }

// FilterUnknownTxs returns the subset of hashes this node does not have,
// recording peer knowledge for the rest.
func (p *TxPool) FilterUnknownTxs(hashes []common.Hash, peer string) []common.Hash {
	return p.storage.FilterUnknownTxs(hashes, peer)
}

// Clear empties the pool.
func (p *TxPool) Clear() { p.storage.Clear() }
