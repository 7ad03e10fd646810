package domain

import "testing"

// ─── Account Tests ──────────────────────────────────────────────────────────

func TestNewAccount(t *testing.T) {
	a := NewAccount(7)
	if a.Client != 7 {
		t.Errorf("Client = %d, want 7", a.Client)
	}
	if a.Available != 0 || a.Held != 0 {
		t.Errorf("new account balances = (%d, %d), want (0, 0)", a.Available, a.Held)
	}
	if a.Locked {
		t.Error("new account is locked")
	}
	if a.Ledger == nil || len(a.Ledger) != 0 {
		t.Errorf("new account ledger = %v, want empty map", a.Ledger)
	}
}

func TestAccountTotal(t *testing.T) {
	tests := []struct {
		name      string
		available Amount
		held      Amount
		want      Amount
	}{
		{"both zero", 0, 0, 0},
		{"held only", 0, 30_000, 30_000},
		{"negative available", -40_000, 50_000, 10_000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccount(1)
			a.Available = tt.available
			a.Held = tt.held
			if got := a.Total(); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAccountSummary(t *testing.T) {
	a := NewAccount(3)
	a.Available = 15_000
	a.Held = 10_000
	a.Locked = true

	got := a.Summary()
	want := AccountSummary{Client: 3, Available: 15_000, Held: 10_000, Total: 25_000, Locked: true}
	if got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}

// ─── Error Policy Tests ─────────────────────────────────────────────────────

func TestIsSuppressed(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"ErrAccountLocked", ErrAccountLocked, false},
		{"ErrIncompatibleTransaction", ErrIncompatibleTransaction, false},
		{"ErrNonDisputedTransaction", ErrNonDisputedTransaction, false},
		{"ErrAmountOverflow", ErrAmountOverflow, false},
		{"ErrInsufficientFunds", ErrInsufficientFunds, true},
		{"ErrNoTransactionFound", ErrNoTransactionFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSuppressed(tt.err); got != tt.want {
				t.Errorf("IsSuppressed(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSentinelErrorsDistinct(t *testing.T) {
	errs := []error{
		ErrAccountLocked,
		ErrIncompatibleTransaction,
		ErrNonDisputedTransaction,
		ErrAmountOverflow,
		ErrInsufficientFunds,
		ErrNoTransactionFound,
	}
	seen := make(map[string]bool)
	for _, err := range errs {
		if err.Error() == "" {
			t.Error("sentinel error with empty message")
		}
		if seen[err.Error()] {
			t.Errorf("duplicate sentinel message: %s", err)
		}
		seen[err.Error()] = true
	}
}
