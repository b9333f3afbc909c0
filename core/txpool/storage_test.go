package txpool

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerchain/node/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// acceptingValidator admits everything and never reports a tx committed.
type acceptingValidator struct {
	ledger *LedgerNonceChecker
}

func (v *acceptingValidator) Verify(tx *Transaction) TransactionStatus { return StatusNone }
func (v *acceptingValidator) SubmittedToChain(tx *Transaction, currentBlock uint64) TransactionStatus {
	if v.ledger != nil && v.ledger.Committed(tx.Sender, tx.Nonce) {
		return StatusNonceCheckFail
	}
	return StatusNone
}
func (v *acceptingValidator) LedgerNonceChecker() *LedgerNonceChecker { return v.ledger }

func newTestStorage(t *testing.T) *MemoryStorage {
	t.Helper()
	ledger := NewLedgerNonceChecker()
	cfg := DefaultConfig
	cfg.PoolLimit = 4
	s := NewMemoryStorage(cfg, &acceptingValidator{ledger: ledger}, NewPoolNonceChecker(), ledger, nil, nil)
	s.Start()
	t.Cleanup(s.Stop)
	return s
}

func TestSubmitTransactionAccepted(t *testing.T) {
	s := newTestStorage(t)
	tx := NewTransaction(common.BytesToHash([]byte{1}), "1", common.Address{}, common.Address{}, nowMillis())

	future, status := s.SubmitTransaction(tx, SourceClient)
	assert.Equal(t, StatusNone, status)
	assert.Equal(t, 1, s.UnsealedTxsSize())
	select {
	case <-future.Done():
		t.Fatal("future should not resolve on bare acceptance")
	default:
	}
}

func TestSubmitTransactionAlreadyKnown(t *testing.T) {
	s := newTestStorage(t)
	tx := NewTransaction(common.BytesToHash([]byte{2}), "1", common.Address{}, common.Address{}, nowMillis())
	_, status := s.SubmitTransaction(tx, SourceClient)
	require.Equal(t, StatusNone, status)

	dup := NewTransaction(common.BytesToHash([]byte{2}), "1", common.Address{}, common.Address{}, nowMillis())
	_, status = s.SubmitTransaction(dup, SourceClient)
	assert.Equal(t, StatusAlreadyInTxPool, status)
}

func TestSubmitTransactionPoolFull(t *testing.T) {
	s := newTestStorage(t)
	for i := 0; i < 4; i++ {
		tx := NewTransaction(common.BytesToHash([]byte{byte(i)}), "1", common.Address{}, common.Address{}, nowMillis())
		_, status := s.SubmitTransaction(tx, SourceClient)
		require.Equal(t, StatusNone, status)
	}
	tx := NewTransaction(common.BytesToHash([]byte{99}), "1", common.Address{}, common.Address{}, nowMillis())
	_, status := s.SubmitTransaction(tx, SourceClient)
	assert.Equal(t, StatusTxPoolIsFull, status)

	// P2P-sourced submissions bypass the capacity check.
	p2pTx := NewTransaction(common.BytesToHash([]byte{100}), "1", common.Address{}, common.Address{}, nowMillis())
	_, status = s.SubmitTransaction(p2pTx, SourceP2P)
	assert.Equal(t, StatusNone, status)
}

func TestBatchFetchSealsAndRespectsLimit(t *testing.T) {
	s := newTestStorage(t)
	for i := 0; i < 3; i++ {
		tx := NewTransaction(common.BytesToHash([]byte{byte(i)}), "1", common.Address{}, common.Address{}, nowMillis())
		_, status := s.SubmitTransaction(tx, SourceClient)
		require.Equal(t, StatusNone, status)
	}

	var txsList, sysTxsList []TransactionMetaData
	s.BatchFetchTxs(&txsList, &sysTxsList, 2, nil, true)
	assert.Len(t, txsList, 2)
	assert.Equal(t, 1, s.UnsealedTxsSize())

	// A second fetch with avoidDuplicate skips the already-sealed entries.
	var again []TransactionMetaData
	s.BatchFetchTxs(&again, &sysTxsList, 2, nil, true)
	assert.Len(t, again, 1)
}

func TestBatchRemoveResolvesCallback(t *testing.T) {
	s := newTestStorage(t)
	hash := common.BytesToHash([]byte{5})
	tx := NewTransaction(hash, "1", common.Address{}, common.Address{}, nowMillis())
	future, status := s.SubmitTransaction(tx, SourceClient)
	require.Equal(t, StatusNone, status)

	s.BatchRemove(1, []CommitResult{{Hash: hash, Nonce: "1", Status: StatusNone}})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := future.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusNonceCheckFail, result.Status)
	assert.Equal(t, 0, s.UnsealedTxsSize())
}

func TestFilterUnknownTxs(t *testing.T) {
	s := newTestStorage(t)
	known := common.BytesToHash([]byte{6})
	tx := NewTransaction(known, "1", common.Address{}, common.Address{}, nowMillis())
	_, status := s.SubmitTransaction(tx, SourceClient)
	require.Equal(t, StatusNone, status)

	missing := common.BytesToHash([]byte{7})
	unknown := s.FilterUnknownTxs([]common.Hash{known, missing}, "peer-a")
	assert.Equal(t, []common.Hash{missing}, unknown)
	assert.True(t, tx.KnownBy("peer-a"))
}
