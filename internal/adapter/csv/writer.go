package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sergiupopescu199/payment-engine/internal/domain"
)

var outputHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders account snapshots as the output table
// "client, available, held, total, locked". Monetary fields carry exactly
// four decimal places and locked is a boolean literal.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter returns a Writer rendering to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteSnapshot appends one row per account. The header is written once,
// ahead of the first row, so snapshots from several sources share one table.
func (w *Writer) WriteSnapshot(accounts []domain.Account) error {
	if !w.wroteHeader {
		if err := w.csv.Write(outputHeader); err != nil {
			return err
		}
		w.wroteHeader = true
	}

	for _, acc := range accounts {
		record := []string{
			strconv.FormatUint(uint64(acc.ClientID), 10),
			acc.Available.StringFixed(4),
			acc.Held.StringFixed(4),
			acc.Total.StringFixed(4),
			strconv.FormatBool(acc.Locked),
		}
		if err := w.csv.Write(record); err != nil {
			return err
		}
	}

	return nil
}

// Flush writes any buffered rows to the underlying writer and reports the
// first error that occurred during writing.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}
