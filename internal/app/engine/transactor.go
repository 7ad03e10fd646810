// Package engine applies payment transactions to client accounts.
//
// The five transactors are pure functions over one account: each mutates
// the account (or leaves it untouched), and reports either a success
// status or a typed domain error. Fatal-versus-suppressed classification
// happens one level up, in the registry.
package engine

import "github.com/payline-systems/payline/internal/domain"

// Status is a transactor's success outcome.
type Status int

const (
	// StatusTransacted: account state changed.
	StatusTransacted Status = iota
	// StatusDuplicate: the request repeats a prior successful operation;
	// nothing changed.
	StatusDuplicate
)

// String returns the lowercase status label used in metrics.
func (s Status) String() string {
	if s == StatusDuplicate {
		return "duplicate"
	}
	return "transacted"
}

// Every transactor checks duplication BEFORE the locked flag: a duplicate
// of an operation that already succeeded stays a harmless no-op even on a
// locked account. That ordering is what makes replaying a failed run safe.

// Deposit credits the account with a new transaction.
func Deposit(acct *domain.Account, tx domain.TransactionID, amount domain.Amount) (Status, error) {
	entry, ok := acct.Ledger[tx]
	if ok && entry.Kind == domain.Credit && entry.Amount == amount {
		return StatusDuplicate, nil
	}
	if acct.Locked {
		return 0, domain.ErrAccountLocked
	}
	if ok {
		return 0, domain.ErrIncompatibleTransaction
	}

	available, err := acct.Available.Add(amount)
	if err != nil {
		return 0, err
	}
	// A deposit is the only operation that raises available + held; keeping
	// that sum in range here is what lets Account.Total add without a check.
	if _, err := available.Add(acct.Held); err != nil {
		return 0, err
	}
	acct.Available = available
	acct.Ledger[tx] = domain.LedgerEntry{
		Kind:   domain.Credit,
		Amount: amount,
		State:  domain.DisputeAccepted,
	}
	return StatusTransacted, nil
}

// Withdraw debits the account. A withdrawal larger than the available
// balance is rejected with ErrInsufficientFunds and leaves no trace in the
// ledger.
func Withdraw(acct *domain.Account, tx domain.TransactionID, amount domain.Amount) (Status, error) {
	entry, ok := acct.Ledger[tx]
	if ok && entry.Kind == domain.Debit && entry.Amount == amount {
		return StatusDuplicate, nil
	}
	if acct.Locked {
		return 0, domain.ErrAccountLocked
	}
	if ok {
		return 0, domain.ErrIncompatibleTransaction
	}
	if amount > acct.Available {
		return 0, domain.ErrInsufficientFunds
	}

	available, err := acct.Available.Sub(amount)
	if err != nil {
		return 0, err
	}
	acct.Available = available
	acct.Ledger[tx] = domain.LedgerEntry{
		Kind:   domain.Debit,
		Amount: amount,
		State:  domain.DisputeAccepted,
	}
	return StatusTransacted, nil
}

// Dispute contests a prior deposit: its funds move available → held.
// Only credits are disputable; a dispute against a debit id behaves like a
// dispute against an unknown id. A dispute landing on an entry that is
// already Held, Resolved or ChargedBack is a duplicate no-op.
func Dispute(acct *domain.Account, tx domain.TransactionID) (Status, error) {
	entry, ok := acct.Ledger[tx]
	if ok && entry.Kind == domain.Credit && entry.State != domain.DisputeAccepted {
		return StatusDuplicate, nil
	}
	if acct.Locked {
		return 0, domain.ErrAccountLocked
	}
	if !ok || entry.Kind == domain.Debit {
		return 0, domain.ErrNoTransactionFound
	}

	// Available may go negative here when the deposit was spent before
	// being disputed. Intentional.
	available, err := acct.Available.Sub(entry.Amount)
	if err != nil {
		return 0, err
	}
	held, err := acct.Held.Add(entry.Amount)
	if err != nil {
		return 0, err
	}
	acct.Available = available
	acct.Held = held
	entry.State = domain.DisputeHeld
	acct.Ledger[tx] = entry
	return StatusTransacted, nil
}

// Resolve concludes a dispute in the client's favor: held funds return to
// available.
func Resolve(acct *domain.Account, tx domain.TransactionID) (Status, error) {
	entry, ok := acct.Ledger[tx]
	if ok && entry.Kind == domain.Credit && entry.State == domain.DisputeResolved {
		return StatusDuplicate, nil
	}
	if acct.Locked {
		return 0, domain.ErrAccountLocked
	}
	if !ok || entry.Kind == domain.Debit {
		return 0, domain.ErrNoTransactionFound
	}
	if entry.State != domain.DisputeHeld {
		return 0, domain.ErrNonDisputedTransaction
	}

	held, err := acct.Held.Sub(entry.Amount)
	if err != nil {
		return 0, err
	}
	available, err := acct.Available.Add(entry.Amount)
	if err != nil {
		return 0, err
	}
	acct.Held = held
	acct.Available = available
	entry.State = domain.DisputeResolved
	acct.Ledger[tx] = entry
	return StatusTransacted, nil
}

// Chargeback reverses a disputed deposit: held funds are removed and the
// account is locked for good.
func Chargeback(acct *domain.Account, tx domain.TransactionID) (Status, error) {
	entry, ok := acct.Ledger[tx]
	if ok && entry.Kind == domain.Credit && entry.State == domain.DisputeChargedBack {
		return StatusDuplicate, nil
	}
	if acct.Locked {
		return 0, domain.ErrAccountLocked
	}
	if !ok || entry.Kind == domain.Debit {
		return 0, domain.ErrNoTransactionFound
	}
	if entry.State != domain.DisputeHeld {
		return 0, domain.ErrNonDisputedTransaction
	}

	held, err := acct.Held.Sub(entry.Amount)
	if err != nil {
		return 0, err
	}
	acct.Held = held
	entry.State = domain.DisputeChargedBack
	acct.Ledger[tx] = entry
	acct.Locked = true
	return StatusTransacted, nil
}
