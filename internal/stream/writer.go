package stream

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/payline-systems/payline/internal/domain"
)

// WriteSummaries renders the account report as CSV:
//
//	client,available,held,total,locked
//	1,1.5000,1.0000,2.5000,false
//
// Balances carry exactly four decimal places. Rows are written in the
// order given; the engine hands them over sorted by client id.
func WriteSummaries(w io.Writer, summaries []domain.AccountSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return err
	}
	for _, s := range summaries {
		row := []string{
			strconv.FormatUint(uint64(s.Client), 10),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
