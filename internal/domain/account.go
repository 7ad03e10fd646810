package domain

// ─── Account Aggregate ──────────────────────────────────────────────────────

// Account is the aggregate state of one client: spendable and held funds,
// the locked flag, and the ledger of every deposit and withdrawal seen so
// far. The total balance is derived, never stored.
//
// Available may legitimately go negative: disputing a deposit that has
// already been spent moves more into held than available can cover.
type Account struct {
	Client    ClientID                      `json:"client"`
	Available Amount                        `json:"available"`
	Held      Amount                        `json:"held"`
	Locked    bool                          `json:"locked"`
	Ledger    map[TransactionID]LedgerEntry `json:"-"`
}

// NewAccount creates an empty, unlocked account for a client.
func NewAccount(client ClientID) *Account {
	return &Account{
		Client: client,
		Ledger: make(map[TransactionID]LedgerEntry),
	}
}

// Total returns available + held. Deposits are refused when they would
// take this sum out of range, and no other operation raises it, so the
// plain sum cannot overflow.
func (a *Account) Total() Amount {
	return a.Available + a.Held
}

// Summary captures the reportable state of the account.
func (a *Account) Summary() AccountSummary {
	return AccountSummary{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}

// AccountSummary is the end-of-stream report row for one account.
type AccountSummary struct {
	Client    ClientID `json:"client"`
	Available Amount   `json:"available"`
	Held      Amount   `json:"held"`
	Total     Amount   `json:"total"`
	Locked    bool     `json:"locked"`
}
