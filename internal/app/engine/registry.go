package engine

import (
	"fmt"
	"sort"

	"github.com/payline-systems/payline/internal/domain"
	"github.com/payline-systems/payline/internal/infra/observability"
)

// Processor consumes a chronological stream of records and yields the
// final account report. Implemented by Registry (sequential) and
// ShardedProcessor (parallel by client shard).
type Processor interface {
	// Process applies one record. A nil return means the record was
	// transacted, was a duplicate, or was skipped under the suppressed
	// error policy. A non-nil return is fatal: the stream must stop and
	// no further records may be submitted.
	Process(rec domain.Record) error

	// Close flushes in-flight work and reports any fatal error that has
	// not yet surfaced through Process.
	Close() error

	// Summaries returns the per-account report, sorted by client id.
	Summaries() []domain.AccountSummary
}

// Registry owns every account and dispatches records to the transactors.
// It is not safe for concurrent use; parallel streams go through
// ShardedProcessor, which keeps one Registry per shard.
type Registry struct {
	accounts map[domain.ClientID]*domain.Account
}

// NewRegistry creates an empty account registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[domain.ClientID]*domain.Account)}
}

// Apply finds or creates the owning account and invokes the transactor
// matching the record type. It returns the raw transactor outcome; error
// policy is the caller's business.
func (r *Registry) Apply(rec domain.Record) (Status, error) {
	acct, ok := r.accounts[rec.Client]
	if !ok {
		acct = domain.NewAccount(rec.Client)
		r.accounts[rec.Client] = acct
		observability.AccountsTracked.Inc()
	}

	switch rec.Type {
	case domain.RecordDeposit:
		return Deposit(acct, rec.Tx, rec.Amount)
	case domain.RecordWithdrawal:
		return Withdraw(acct, rec.Tx, rec.Amount)
	case domain.RecordDispute:
		return Dispute(acct, rec.Tx)
	case domain.RecordResolve:
		return Resolve(acct, rec.Tx)
	case domain.RecordChargeback:
		return Chargeback(acct, rec.Tx)
	default:
		return 0, fmt.Errorf("unknown record type %q", rec.Type)
	}
}

// Process applies one record under the error policy: suppressed errors
// are counted and discarded, fatal errors abort with client/tx context
// attached.
func (r *Registry) Process(rec domain.Record) error {
	status, err := r.Apply(rec)
	if err == nil {
		observability.TransactionsApplied.WithLabelValues(string(rec.Type), status.String()).Inc()
		return nil
	}
	if domain.IsSuppressed(err) {
		observability.SuppressedErrors.WithLabelValues(string(rec.Type)).Inc()
		return nil
	}
	observability.FatalErrors.Inc()
	return fmt.Errorf("%s client=%d tx=%d: %w", rec.Type, rec.Client, rec.Tx, err)
}

// Close implements Processor. The sequential registry has nothing in
// flight.
func (r *Registry) Close() error { return nil }

// Account returns the account for a client, if one exists.
func (r *Registry) Account(client domain.ClientID) (*domain.Account, bool) {
	acct, ok := r.accounts[client]
	return acct, ok
}

// Len returns the number of accounts in the registry.
func (r *Registry) Len() int { return len(r.accounts) }

// Summaries returns the final report rows sorted by client id. Row order
// is free in the output contract; sorting makes runs reproducible.
func (r *Registry) Summaries() []domain.AccountSummary {
	out := make([]domain.AccountSummary, 0, len(r.accounts))
	for _, acct := range r.accounts {
		out = append(out, acct.Summary())
	}
	sortSummaries(out)
	return out
}

func sortSummaries(s []domain.AccountSummary) {
	sort.Slice(s, func(i, j int) bool { return s[i].Client < s[j].Client })
}
