// Package stream connects the transaction engine to its external CSV
// collaborators: parsing the input stream into records and rendering the
// final account report. The engine itself never touches a file or a
// socket.
package stream

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/payline-systems/payline/internal/domain"
	"github.com/payline-systems/payline/internal/infra/observability"
)

// ErrParse reports a malformed input stream. Parse errors are always
// fatal: a stream that cannot be read cannot be trusted.
var ErrParse = errors.New("parse error")

// header is the required first row of every input stream.
var header = [4]string{"type", "client", "tx", "amount"}

// Reader decodes transaction records from an input CSV stream.
//
// Every record carries exactly four fields; dispute, resolve and
// chargeback rows leave the amount field empty. Whitespace around fields
// is tolerated, type literals are lowercase only.
type Reader struct {
	csv        *csv.Reader
	readHeader bool
}

// NewReader wraps an input stream. The header row is validated on the
// first Read call.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 4
	return &Reader{csv: cr}
}

// Read returns the next record, or io.EOF at end of stream.
func (r *Reader) Read() (domain.Record, error) {
	if !r.readHeader {
		if err := r.checkHeader(); err != nil {
			return domain.Record{}, err
		}
		r.readHeader = true
	}

	fields, err := r.csv.Read()
	if err == io.EOF {
		return domain.Record{}, io.EOF
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: bad client id %q", ErrParse, fields[1])
	}
	tx, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: bad transaction id %q", ErrParse, fields[2])
	}

	rec := domain.Record{
		Client: domain.ClientID(client),
		Tx:     domain.TransactionID(tx),
	}

	switch typ := domain.RecordType(fields[0]); typ {
	case domain.RecordDeposit, domain.RecordWithdrawal:
		if fields[3] == "" {
			return domain.Record{}, fmt.Errorf("%w: amount missing for %s", ErrParse, typ)
		}
		amount, err := domain.ParseAmount(fields[3])
		if err != nil {
			return domain.Record{}, fmt.Errorf("%w: bad amount %q: %v", ErrParse, fields[3], err)
		}
		rec.Type = typ
		rec.Amount = amount
	case domain.RecordDispute, domain.RecordResolve, domain.RecordChargeback:
		// The amount column is present but carries no value for these;
		// any stray content is ignored.
		rec.Type = typ
	default:
		return domain.Record{}, fmt.Errorf("%w: unknown record type %q", ErrParse, fields[0])
	}

	observability.RecordsRead.Inc()
	return rec, nil
}

func (r *Reader) checkHeader() error {
	fields, err := r.csv.Read()
	if err == io.EOF {
		return fmt.Errorf("%w: empty input", ErrParse)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i, want := range header {
		if strings.TrimSpace(fields[i]) != want {
			return fmt.Errorf("%w: bad header field %q, want %q", ErrParse, fields[i], want)
		}
	}
	return nil
}

// Consumer is the engine-side sink for parsed records.
type Consumer interface {
	Process(rec domain.Record) error
}

// Drain feeds every record of the input into the consumer. It stops on
// the first fatal error — from the parser or the engine — and returns it.
func Drain(r io.Reader, c Consumer) error {
	rd := NewReader(r)
	for {
		rec, err := rd.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := c.Process(rec); err != nil {
			return err
		}
	}
}
