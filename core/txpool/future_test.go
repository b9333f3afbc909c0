package txpool

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerchain/node/common"
	"github.com/stretchr/testify/assert"
)

func TestFutureResolveOnce(t *testing.T) {
	f := newFuture()
	f.resolve(SubmitResult{TxHash: common.BytesToHash([]byte{1}), Status: StatusNone})
	f.resolve(SubmitResult{TxHash: common.BytesToHash([]byte{2}), Status: StatusMalform})

	result, err := f.Await(context.Background())
	assert.NoError(t, err)
	// Second resolve is a no-op: the first result sticks.
	assert.Equal(t, common.BytesToHash([]byte{1}), result.TxHash)
	assert.Equal(t, StatusNone, result.Status)
}

func TestFutureAwaitContextCancel(t *testing.T) {
	f := newFuture()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFutureDoneChannel(t *testing.T) {
	f := newFuture()
	select {
	case <-f.Done():
		t.Fatal("future should not be done yet")
	default:
	}
	f.resolve(SubmitResult{})
	select {
	case <-f.Done():
	default:
		t.Fatal("future should be done after resolve")
	}
}
