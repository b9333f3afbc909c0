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

// SignatureVerifier checks that a transaction's signature recovers to its
// claimed sender. Kept as a narrow collaborator interface so tests can stub
// it without pulling in a real signature scheme.
type SignatureVerifier interface {
	Verify(tx *Transaction) bool
}

// ValidationOptions bound the static checks a Validator performs before a
// transaction is admitted: the chain it targets, and the gas bounds it must
// respect.
type ValidationOptions struct {
	ChainID   uint64
	MinGas    uint64
	MaxGas    uint64
	MaxTxSize int
}

// Validator is the stateless collaborator the pool consults on submit and
// re-consults on fetch. It never mutates pool state.
type Validator interface {
	// Verify performs static checks: signature, chain id, gas bounds. It
	// returns StatusNone on success.
	Verify(tx *Transaction) TransactionStatus

	// SubmittedToChain reports whether tx has already been committed
	// (StatusNonceCheckFail) or whether its block-limit window has expired
	// (StatusBlockLimitCheckFail), consulting the nonce checkers and the
	// ledger's current block number.
	SubmittedToChain(tx *Transaction, currentBlock uint64) TransactionStatus

	// LedgerNonceChecker exposes the ledger-side nonce checker so the pool
	// can forward batch commits to it without the validator needing a
	// reference back into the pool.
	LedgerNonceChecker() *LedgerNonceChecker
}

// NoopSignatureVerifier accepts every transaction without checking anything.
// Useful for standalone deployments where signature checking happens
// upstream of the pool, or in tests that don't exercise rejection paths.
type NoopSignatureVerifier struct{}

func (NoopSignatureVerifier) Verify(tx *Transaction) bool { return true }

// DefaultValidator is the production Validator: it checks a transaction's
// signature via the supplied SignatureVerifier, rejects a transaction whose
// nonce string is longer than a non-zero MaxTxSize, and consults the ledger
// nonce checker to answer SubmittedToChain. It does not check ChainID, MinGas
// or MaxGas; Transaction carries no chain id or gas fields.
type DefaultValidator struct {
	opts     ValidationOptions
	sig      SignatureVerifier
	ledger   *LedgerNonceChecker
	blockTTL uint64 // batches a sealed tx remains eligible for after the batch it was sealed under
}

// NewDefaultValidator builds a Validator around the given signature
// verifier and ledger nonce checker. blockTTL bounds how many batches may
// pass before a sealed-but-uncommitted transaction's block-limit window
// expires.
func NewDefaultValidator(opts ValidationOptions, sig SignatureVerifier, ledger *LedgerNonceChecker, blockTTL uint64) *DefaultValidator {
	return &DefaultValidator{opts: opts, sig: sig, ledger: ledger, blockTTL: blockTTL}
}

func (v *DefaultValidator) Verify(tx *Transaction) TransactionStatus {
	if v.sig != nil && !v.sig.Verify(tx) {
		return StatusMalform
	}
	if v.opts.MaxTxSize > 0 && len(tx.Nonce) > v.opts.MaxTxSize {
		return StatusMalform
	}
	return StatusNone
}

func (v *DefaultValidator) SubmittedToChain(tx *Transaction, currentBlock uint64) TransactionStatus {
	if v.ledger != nil && v.ledger.Committed(tx.Sender, tx.Nonce) {
		return StatusNonceCheckFail
	}
	if sealed, batchID, _ := tx.SealInfo(); sealed && v.blockTTL > 0 {
		if currentBlock > batchID+v.blockTTL {
			return StatusBlockLimitCheckFail
		}
	}
	return StatusNone
}

func (v *DefaultValidator) LedgerNonceChecker() *LedgerNonceChecker {
	return v.ledger
}
