// Package domain contains pure business types with ZERO infrastructure
// imports. This is the innermost ring of the application — it depends on
// nothing.
package domain

// ClientID identifies a client account.
type ClientID uint16

// TransactionID identifies a single transaction within the stream.
// Ids are unique per account; a repeat of the same id is either an
// idempotent duplicate or a fatal incompatibility.
type TransactionID uint32

// ─── Ledger Types ───────────────────────────────────────────────────────────

// TransactionKind represents the accounting side of a ledger entry.
type TransactionKind string

const (
	// Credit is a deposit: funds flow into the account.
	Credit TransactionKind = "CREDIT"
	// Debit is a withdrawal: funds flow out of the account.
	Debit TransactionKind = "DEBIT"
)

// DisputeState is the lifecycle state of a single stored transaction.
//
//	Accepted ──dispute──▶ Held ──resolve──▶ Resolved
//	                       │
//	                       └──chargeback──▶ ChargedBack (locks the account)
//
// Resolved and ChargedBack are terminal.
type DisputeState string

const (
	DisputeAccepted    DisputeState = "ACCEPTED"
	DisputeHeld        DisputeState = "HELD"
	DisputeResolved    DisputeState = "RESOLVED"
	DisputeChargedBack DisputeState = "CHARGED_BACK"
)

// LedgerEntry is one stored deposit or withdrawal, remembered for the
// lifetime of the account so that disputes can reach back to it.
type LedgerEntry struct {
	Kind   TransactionKind `json:"kind"`
	Amount Amount          `json:"amount"`
	State  DisputeState    `json:"state"`
}

// ─── Input Records ──────────────────────────────────────────────────────────

// RecordType is the transaction type literal from the input stream.
type RecordType string

const (
	RecordDeposit    RecordType = "deposit"
	RecordWithdrawal RecordType = "withdrawal"
	RecordDispute    RecordType = "dispute"
	RecordResolve    RecordType = "resolve"
	RecordChargeback RecordType = "chargeback"
)

// Record is one parsed transaction from the input stream.
// Amount is meaningful only for deposit and withdrawal records; the parser
// guarantees it is set for those and zero otherwise.
type Record struct {
	Type   RecordType
	Client ClientID
	Tx     TransactionID
	Amount Amount
}
