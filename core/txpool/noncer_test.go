package txpool

import (
	"testing"

	"github.com/ledgerchain/node/common"
	"github.com/stretchr/testify/assert"
)

func TestPoolNonceCheckerInsertRemove(t *testing.T) {
	checker := NewPoolNonceChecker()
	sender := common.BytesToAddress([]byte{1})

	assert.False(t, checker.Contains(sender, "1"))
	checker.Insert(sender, "1")
	checker.Insert(sender, "2")
	assert.True(t, checker.Contains(sender, "1"))
	assert.True(t, checker.Contains(sender, "2"))

	checker.Remove(sender, "1")
	assert.False(t, checker.Contains(sender, "1"))
	assert.True(t, checker.Contains(sender, "2"))

	checker.Remove(sender, "2")
	// The sender entry itself is dropped once empty.
	_, ok := checker.nonces[sender]
	assert.False(t, ok)
}

func TestPoolNonceCheckerBatchRemove(t *testing.T) {
	checker := NewPoolNonceChecker()
	sender := common.BytesToAddress([]byte{2})
	checker.Insert(sender, "5")

	hash := common.BytesToHash([]byte{9})
	checker.BatchRemove([]CommitResult{{Hash: hash, Nonce: "5"}}, func(h common.Hash) (common.Address, bool) {
		if h == hash {
			return sender, true
		}
		return common.Address{}, false
	})
	assert.False(t, checker.Contains(sender, "5"))
}

func TestLedgerNonceCheckerCommittedAndEvict(t *testing.T) {
	checker := NewLedgerNonceChecker()
	sender := common.BytesToAddress([]byte{3})

	checker.BatchInsert(10, sender, []string{"1", "2"})
	assert.True(t, checker.Committed(sender, "1"))
	assert.True(t, checker.Committed(sender, "2"))
	assert.False(t, checker.Committed(sender, "3"))

	checker.BatchInsert(20, sender, []string{"3"})
	checker.Evict(20)
	// Batch 10 is strictly below the retention window and is dropped...
	assert.False(t, checker.Committed(sender, "1"))
	assert.False(t, checker.Committed(sender, "2"))
	// ...while batch 20 survives.
	assert.True(t, checker.Committed(sender, "3"))
}
