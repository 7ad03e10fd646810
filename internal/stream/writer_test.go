package stream

import (
	"bytes"
	"testing"

	"github.com/payline-systems/payline/internal/domain"
)

func TestWriteSummaries(t *testing.T) {
	summaries := []domain.AccountSummary{
		{Client: 1, Available: 90_000, Held: 0, Total: 90_000, Locked: false},
		{Client: 2, Available: -40_000, Held: 50_000, Total: 10_000, Locked: true},
	}

	var buf bytes.Buffer
	if err := WriteSummaries(&buf, summaries); err != nil {
		t.Fatalf("WriteSummaries: %v", err)
	}

	want := "client,available,held,total,locked\n" +
		"1,9.0000,0.0000,9.0000,false\n" +
		"2,-4.0000,5.0000,1.0000,true\n"
	if got := buf.String(); got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteSummaries_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummaries(&buf, nil); err != nil {
		t.Fatalf("WriteSummaries: %v", err)
	}
	if got := buf.String(); got != "client,available,held,total,locked\n" {
		t.Errorf("output = %q, want header only", got)
	}
}
