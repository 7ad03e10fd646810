package domain

import (
	"errors"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  Amount
	}{
		{"0", 0},
		{"0.0001", 1},
		{"0.0010", 10},
		{"0.0100", 100},
		{"0.1000", 1_000},
		{"1.0000", 10_000},
		{"0.001", 10},
		{"0.01", 100},
		{"0.1", 1_000},
		{"1", 10_000},
		{"1.01", 10_100},
		{"10.01", 100_100},
		{"1.", 10_000},
		{".5", 5_000},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if err != nil {
				t.Fatalf("ParseAmount(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseAmount_Malformed(t *testing.T) {
	for _, input := range []string{"", ".", "abc", "1.2.3", "1,5", "-1", "1.00001", "1e3", " 1"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseAmount(input); err == nil {
				t.Errorf("ParseAmount(%q) succeeded, want error", input)
			}
		})
	}
}

func TestParseAmount_Overflow(t *testing.T) {
	_, err := ParseAmount("99999999999999999999")
	if !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("ParseAmount overflow error = %v, want ErrAmountOverflow", err)
	}
}

func TestAmountString(t *testing.T) {
	tests := []struct {
		amount Amount
		want   string
	}{
		{0, "0.0000"},
		{1, "0.0001"},
		{10, "0.0010"},
		{100, "0.0100"},
		{1_000, "0.1000"},
		{10_000, "1.0000"},
		{10_100, "1.0100"},
		{100_100, "10.0100"},
		{-40_000, "-4.0000"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.amount.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAmountAddSub(t *testing.T) {
	a := Amount(15_000)
	b := Amount(5_000)

	sum, err := a.Add(b)
	if err != nil || sum != 20_000 {
		t.Errorf("Add = (%d, %v), want (20000, nil)", sum, err)
	}

	diff, err := a.Sub(b)
	if err != nil || diff != 10_000 {
		t.Errorf("Sub = (%d, %v), want (10000, nil)", diff, err)
	}

	// Crossing zero is fine; available balances are allowed to go negative.
	neg, err := b.Sub(a)
	if err != nil || neg != -10_000 {
		t.Errorf("Sub below zero = (%d, %v), want (-10000, nil)", neg, err)
	}
}

func TestAmountAdd_Overflow(t *testing.T) {
	if _, err := Amount(math.MaxInt64).Add(1); !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("Add overflow error = %v, want ErrAmountOverflow", err)
	}
	if _, err := Amount(math.MinInt64).Sub(1); !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("Sub underflow error = %v, want ErrAmountOverflow", err)
	}
}

func TestAmountNeg(t *testing.T) {
	if got := Amount(42).Neg(); got != -42 {
		t.Errorf("Neg() = %d, want -42", got)
	}
	if !Amount(-1).IsNegative() {
		t.Error("Amount(-1).IsNegative() = false, want true")
	}
	if Amount(0).IsNegative() {
		t.Error("Amount(0).IsNegative() = true, want false")
	}
}

func TestAmountMarshalJSON(t *testing.T) {
	got, err := Amount(10_100).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(got) != `"1.0100"` {
		t.Errorf("MarshalJSON = %s, want %q", got, `"1.0100"`)
	}
}
