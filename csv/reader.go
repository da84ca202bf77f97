package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/transaction"
)

// ParseError describes a malformed input record. Any ParseError is fatal to
// the run.
type ParseError struct {
	Line    int
	Field   string
	Message string
}

// Error returns the formatted parse error string.
func (e ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}

	return fmt.Sprintf("line %d: %s (%s)", e.Line, e.Message, e.Field)
}

// Reader decodes transaction records from CSV input with the header
// `type,client,tx,amount`. The amount column is required for deposits and
// withdrawals and ignored for dispute lifecycle kinds.
type Reader struct {
	rows *csv.Reader
	line int
}

// NewReader creates a transaction reader over r. Leading whitespace in fields
// is tolerated.
func NewReader(r io.Reader) *Reader {
	rows := csv.NewReader(r)
	rows.TrimLeadingSpace = true
	// Dispute lifecycle rows may omit the amount column entirely.
	rows.FieldsPerRecord = -1

	return &Reader{rows: rows}
}

// Read returns the next transaction in the stream. io.EOF ends the stream;
// any other error aborts the run.
func (r *Reader) Read() (transaction.Transaction, error) {
	for {
		record, err := r.rows.Read()
		if err != nil {
			return transaction.Transaction{}, err
		}

		r.line++

		if r.line == 1 && isHeader(record) {
			continue
		}

		return r.decode(record)
	}
}

// ReadAll consumes the remaining stream. It stops at the first malformed
// record, in keeping with the fail-fast contract.
func (r *Reader) ReadAll() ([]transaction.Transaction, error) {
	var out []transaction.Transaction

	for {
		tx, err := r.Read()
		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		out = append(out, tx)
	}
}

func isHeader(record []string) bool {
	return len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "type")
}

func (r *Reader) decode(record []string) (transaction.Transaction, error) {
	if len(record) < 3 {
		return transaction.Transaction{}, ParseError{Line: r.line, Message: "expected at least type, client and tx fields"}
	}

	kind, err := transaction.ParseKind(record[0])
	if err != nil {
		return transaction.Transaction{}, ParseError{Line: r.line, Field: "type", Message: err.Error()}
	}

	client, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 16)
	if err != nil {
		return transaction.Transaction{}, ParseError{Line: r.line, Field: "client", Message: "client id must be an unsigned 16-bit integer"}
	}

	id, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 32)
	if err != nil {
		return transaction.Transaction{}, ParseError{Line: r.line, Field: "tx", Message: "transaction id must be an unsigned 32-bit integer"}
	}

	tx := transaction.Transaction{
		Kind:   kind,
		Client: transaction.ClientID(client),
		ID:     transaction.TransactionID(id),
	}

	if !kind.HasAmount() {
		return tx, nil
	}

	if len(record) < 4 || strings.TrimSpace(record[3]) == "" {
		return transaction.Transaction{}, ParseError{Line: r.line, Field: "amount", Message: "amount is required for deposits and withdrawals"}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return transaction.Transaction{}, ParseError{Line: r.line, Field: "amount", Message: "amount must be a decimal number"}
	}

	tx.Amount = amount

	return tx, nil
}
