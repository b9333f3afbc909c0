package txpool

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerchain/node/common"
	"github.com/ledgerchain/node/common/mclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaperEvictsExpiredTransactions(t *testing.T) {
	clock := new(mclock.Simulated)
	ledger := NewLedgerNonceChecker()
	cfg := DefaultConfig
	cfg.TxsExpiration = time.Minute
	cfg.CleanupInterval = time.Second

	storage := NewMemoryStorage(cfg, &acceptingValidator{ledger: ledger}, NewPoolNonceChecker(), ledger, nil, clock)
	storage.Start()
	defer storage.Stop()

	// Stamp ImportTime from the same simulated clock the reaper consults, so
	// expiry compares virtual time against virtual time.
	tx := NewTransaction(common.BytesToHash([]byte{1}), "1", common.Address{}, common.Address{}, storage.nowMillis())
	future, status := storage.SubmitTransaction(tx, SourceClient)
	require.Equal(t, StatusNone, status)

	reaper := NewReaper(storage, clock, cfg)
	reaper.Start()
	defer reaper.Stop()

	clock.WaitForTimers(1)
	clock.Run(cfg.CleanupInterval) // first tick: not expired yet
	assert.Equal(t, 1, storage.UnsealedTxsSize())

	clock.WaitForTimers(1)
	clock.Run(cfg.TxsExpiration) // pushes well past the expiration window

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := future.Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusTransactionPoolTimeout, result.Status)
	assert.Equal(t, 0, storage.UnsealedTxsSize())
}

func TestReaperHonorsCleanupSwitch(t *testing.T) {
	clock := new(mclock.Simulated)
	ledger := NewLedgerNonceChecker()
	cfg := DefaultConfig
	cfg.TxsExpiration = time.Minute
	cfg.CleanupInterval = time.Second
	cfg.TxsCleanUpSwitch = func() bool { return false }

	storage := NewMemoryStorage(cfg, &acceptingValidator{ledger: ledger}, NewPoolNonceChecker(), ledger, nil, clock)
	storage.Start()
	defer storage.Stop()

	tx := NewTransaction(common.BytesToHash([]byte{2}), "1", common.Address{}, common.Address{}, storage.nowMillis())
	_, status := storage.SubmitTransaction(tx, SourceClient)
	require.Equal(t, StatusNone, status)

	reaper := NewReaper(storage, clock, cfg)
	reaper.Start()
	defer reaper.Stop()

	clock.WaitForTimers(1)
	clock.Run(cfg.TxsExpiration * 2)
	// The switch is off, so even a long-expired transaction survives.
	assert.Equal(t, 1, storage.UnsealedTxsSize())
}
