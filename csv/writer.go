package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/LerianStudio/payments-engine/engine"
)

// outputPlaces is the fixed number of fractional digits rendered for every
// balance column.
const outputPlaces = 4

// Writer encodes account snapshots as CSV rows with the header
// `client,available,held,total,locked`.
type Writer struct {
	rows    *csv.Writer
	started bool
}

// NewWriter creates a snapshot writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{rows: csv.NewWriter(w)}
}

// Write appends one snapshot row, emitting the header before the first row.
func (w *Writer) Write(s engine.Snapshot) error {
	if !w.started {
		if err := w.rows.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
			return err
		}

		w.started = true
	}

	return w.rows.Write([]string{
		strconv.FormatUint(uint64(s.Client), 10),
		s.Available.StringFixed(outputPlaces),
		s.Held.StringFixed(outputPlaces),
		s.Total.StringFixed(outputPlaces),
		strconv.FormatBool(s.Locked),
	})
}

// WriteAll appends every snapshot and flushes.
func (w *Writer) WriteAll(snapshots []engine.Snapshot) error {
	for _, s := range snapshots {
		if err := w.Write(s); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Flush writes any buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.rows.Flush()

	return w.rows.Error()
}
