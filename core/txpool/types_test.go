package txpool

import (
	"testing"

	"github.com/ledgerchain/node/common"
	"github.com/stretchr/testify/assert"
)

func newTestTx(hash byte) *Transaction {
	return NewTransaction(common.BytesToHash([]byte{hash}), "1", common.Address{}, common.Address{}, nowMillis())
}

func TestTransactionSealUnseal(t *testing.T) {
	tx := newTestTx(1)
	assert.False(t, tx.Sealed())

	tx.Seal(7, common.BytesToHash([]byte{0xaa}))
	sealed, batchID, batchHash := tx.SealInfo()
	assert.True(t, sealed)
	assert.Equal(t, uint64(7), batchID)
	assert.Equal(t, common.BytesToHash([]byte{0xaa}), batchHash)
	assert.True(t, tx.MatchesBatch(7, common.BytesToHash([]byte{0xaa})))

	tx.Unseal()
	sealed, batchID, batchHash = tx.SealInfo()
	assert.False(t, sealed)
	assert.Equal(t, uint64(0), batchID)
	assert.Equal(t, common.Hash{}, batchHash)
}

func TestTransactionCallbackTakenOnce(t *testing.T) {
	tx := newTestTx(2)
	calls := 0
	tx.InstallCallback(func(SubmitResult) { calls++ })

	cb := tx.TakeCallback()
	assert.NotNil(t, cb)
	cb(SubmitResult{})
	assert.Equal(t, 1, calls)

	// A second take observes nothing: the callback is consumed exactly once.
	assert.Nil(t, tx.TakeCallback())
}

func TestTransactionMarkKnownByEviction(t *testing.T) {
	tx := newTestTx(3)
	for i := 0; i < knownNodesCap+10; i++ {
		tx.MarkKnownBy(string(rune(i)))
	}
	// The LRU never grows past its configured capacity...
	assert.LessOrEqual(t, tx.knownNodes.Len(), knownNodesCap)
	// ...and the most recently marked peers survive the eviction.
	assert.True(t, tx.KnownBy(string(rune(knownNodesCap+9))))
	assert.False(t, tx.KnownBy(string(rune(0))))
}

func TestTransactionInvalidIsSticky(t *testing.T) {
	tx := newTestTx(4)
	assert.False(t, tx.Invalid())
	tx.MarkInvalid()
	assert.True(t, tx.Invalid())
	tx.MarkInvalid()
	assert.True(t, tx.Invalid())
}
