package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies one customer. Well-formed input uses the unsigned
// 16-bit range.
type ClientID uint16

// TransactionID identifies one ledger event. Globally unique across all
// clients in well-formed input; disputes reference prior deposits through it.
type TransactionID uint32

// Kind represents the ledger event type carried by a transaction.
type Kind string

const (
	// KindDeposit credits a client's available funds from an external source.
	KindDeposit Kind = "deposit"
	// KindWithdrawal debits a client's available funds to an external destination.
	KindWithdrawal Kind = "withdrawal"
	// KindDispute claims a prior deposit was erroneous and holds its funds.
	KindDispute Kind = "dispute"
	// KindResolve closes a dispute, releasing held funds back to available.
	KindResolve Kind = "resolve"
	// KindChargeback closes a dispute, reversing the deposit and freezing the account.
	KindChargeback Kind = "chargeback"
)

// ParseKind takes a string kind and returns a Kind constant.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	case KindDispute:
		return KindDispute, nil
	case KindResolve:
		return KindResolve, nil
	case KindChargeback:
		return KindChargeback, nil
	}

	var k Kind

	return k, fmt.Errorf("not a valid Kind: %q", s)
}

// HasAmount reports whether this kind carries an amount. Dispute lifecycle
// kinds reference a prior deposit by id and carry no amount of their own.
func (k Kind) HasAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is the record of a financial operation performed against a
// client's asset account. Transactions represent immutable historical events.
type Transaction struct {
	Kind   Kind
	Client ClientID
	ID     TransactionID
	// Amount is the transacted value, meaningful only for deposits and
	// withdrawals. Zero for dispute lifecycle kinds.
	Amount decimal.Decimal
}

// PartOfDispute reports whether the transaction belongs to a dispute process.
func (t Transaction) PartOfDispute() bool {
	switch t.Kind {
	case KindDispute, KindResolve, KindChargeback:
		return true
	}

	return false
}

// DepositAmount returns the amount iff the transaction is a deposit.
func (t Transaction) DepositAmount() (decimal.Decimal, bool) {
	if t.Kind != KindDeposit {
		return decimal.Zero, false
	}

	return t.Amount, true
}

// ValidAmount checks whether the transaction amount is a valid one. Kinds
// without an amount are always valid; deposits and withdrawals require a
// strictly positive amount.
func (t Transaction) ValidAmount() bool {
	if !t.Kind.HasAmount() {
		return true
	}

	return t.Amount.IsPositive()
}
