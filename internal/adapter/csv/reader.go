// Package csv reads transaction record streams and writes account tables.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sergiupopescu199/payment-engine/internal/domain"
)

// Reader decodes the positional record format "type, client, tx, amount"
// into transactions. Deposit and withdrawal rows carry four fields; dispute,
// resolve and chargeback rows carry three or a trailing empty amount. Fields
// tolerate surrounding whitespace.
//
// A malformed row is a boundary failure, not a ledger decision: Next returns
// an error naming the offending input line and the stream is unusable past
// it.
type Reader struct {
	csv        *csv.Reader
	headerSeen bool
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	return &Reader{csv: cr}
}

// Next returns the next transaction in the stream, or io.EOF once the input
// is exhausted. The header row is consumed and validated on first use.
func (r *Reader) Next() (domain.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			if err == io.EOF {
				return domain.Transaction{}, io.EOF
			}
			return domain.Transaction{}, err
		}
		// The csv reader skips blank lines, so errors name the physical
		// line the record starts on, not the record count.
		line, _ := r.csv.FieldPos(0)

		fields := trimFields(record)

		if !r.headerSeen {
			r.headerSeen = true
			if err := validateHeader(fields); err != nil {
				return domain.Transaction{}, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		tx, err := parseRecord(fields)
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("line %d: %w", line, err)
		}

		return tx, nil
	}
}

func trimFields(record []string) []string {
	fields := make([]string, len(record))
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}

	// A trailing comma on an amountless row shows up as an empty last field.
	if n := len(fields); n == 4 && fields[3] == "" {
		fields = fields[:3]
	}

	return fields
}

func validateHeader(fields []string) error {
	if len(fields) < 3 || !strings.EqualFold(fields[0], "type") {
		return fmt.Errorf("expected header %q, got %q", "type, client, tx, amount", strings.Join(fields, ", "))
	}
	return nil
}

func parseRecord(fields []string) (domain.Transaction, error) {
	if len(fields) != 3 && len(fields) != 4 {
		return domain.Transaction{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(fields))
	}

	kind, err := domain.ParseKind(fields[0])
	if err != nil {
		return domain.Transaction{}, err
	}

	client, err := strconv.ParseUint(fields[1], 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("client id %q: %w", fields[1], err)
	}

	txID, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("transaction id %q: %w", fields[2], err)
	}

	tx := domain.Transaction{
		Kind:     kind,
		ClientID: domain.ClientID(client),
		TxID:     domain.TxID(txID),
		Amount:   decimal.Zero,
	}

	if len(fields) == 4 {
		amount, err := decimal.NewFromString(fields[3])
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("amount %q: %w", fields[3], err)
		}
		// An amount on a dispute lifecycle row must still parse; the value
		// itself is dropped, the ledger recovers it from the referenced
		// deposit.
		if kind.HasAmount() {
			tx.Amount = amount
		}
	}

	return tx, nil
}
