package account

import (
	"context"

	"github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/transaction"
)

// RejectReason classifies a silently ignored transaction for diagnostics.
// Reasons only annotate log entries; rejections never surface as errors.
type RejectReason string

const (
	// ReasonAccountLocked marks any transaction against a frozen account.
	ReasonAccountLocked RejectReason = "account_locked"
	// ReasonInvalidAmount marks a deposit or withdrawal with a non-positive amount.
	ReasonInvalidAmount RejectReason = "invalid_amount"
	// ReasonInsufficientFunds marks a withdrawal the available balance cannot cover.
	ReasonInsufficientFunds RejectReason = "insufficient_funds"
	// ReasonUnknownDeposit marks a dispute referencing an id that is not a recorded deposit.
	ReasonUnknownDeposit RejectReason = "unknown_deposit"
	// ReasonDisputeNotOpen marks a resolve or chargeback without an open dispute.
	ReasonDisputeNotOpen RejectReason = "dispute_not_open"
)

// Account is the current state of one client's asset funds and transaction
// history. Accounts are mutated only through Apply, one transaction at a time.
type Account struct {
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool

	// Accepted deposits and withdrawals, keyed by id, in arrival order.
	history map[transaction.TransactionID]transaction.Transaction
	order   []transaction.TransactionID

	disputes map[transaction.TransactionID]*transaction.Dispute

	logger log.Logger
}

// New creates an empty account. The caller is expected to apply the client's
// first accepted deposit immediately after; accounts never exist without one.
// A nil logger is replaced with a no-op logger.
func New(logger log.Logger) *Account {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Account{
		available: decimal.Zero,
		held:      decimal.Zero,
		history:   make(map[transaction.TransactionID]transaction.Transaction),
		disputes:  make(map[transaction.TransactionID]*transaction.Dispute),
		logger:    logger,
	}
}

// Available returns the funds the client may withdraw or have disputed.
func (a *Account) Available() decimal.Decimal {
	return a.available
}

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() decimal.Decimal {
	return a.held
}

// Total returns available plus held funds.
func (a *Account) Total() decimal.Decimal {
	return a.available.Add(a.held)
}

// Locked reports whether the account has undergone a chargeback and rejects
// all further transactions.
func (a *Account) Locked() bool {
	return a.locked
}

// History returns the accepted deposits and withdrawals in arrival order.
func (a *Account) History() []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.history[id])
	}

	return out
}

// Apply updates the account state for one incoming transaction. It is the
// sole mutator. Transactions that violate a business rule have no effect and
// raise no error; once the account is locked every transaction is inert.
func (a *Account) Apply(ctx context.Context, tx transaction.Transaction) {
	if a.locked {
		a.reject(ctx, tx, ReasonAccountLocked)
		return
	}

	switch tx.Kind {
	case transaction.KindDeposit:
		a.applyDeposit(ctx, tx)
	case transaction.KindWithdrawal:
		a.applyWithdrawal(ctx, tx)
	case transaction.KindDispute:
		a.openDispute(ctx, tx)
	case transaction.KindResolve:
		a.resolveDispute(ctx, tx)
	case transaction.KindChargeback:
		a.chargebackDispute(ctx, tx)
	}
}

// DisputedDeposit returns the original deposit amount recorded under id. It
// reports false for any id that is absent or not a deposit, which keeps
// withdrawals and unknown ids out of the dispute process.
func (a *Account) DisputedDeposit(id transaction.TransactionID) (decimal.Decimal, bool) {
	tx, ok := a.history[id]
	if !ok {
		return decimal.Zero, false
	}

	return tx.DepositAmount()
}

func (a *Account) applyDeposit(ctx context.Context, tx transaction.Transaction) {
	if !tx.ValidAmount() {
		a.reject(ctx, tx, ReasonInvalidAmount)
		return
	}

	a.available = a.available.Add(tx.Amount)
	a.record(tx)
}

func (a *Account) applyWithdrawal(ctx context.Context, tx transaction.Transaction) {
	if !tx.ValidAmount() {
		a.reject(ctx, tx, ReasonInvalidAmount)
		return
	}

	// Strictly greater: a withdrawal of the entire available balance is
	// rejected. Historical behavior, kept as-is.
	if !a.available.GreaterThan(tx.Amount) {
		a.reject(ctx, tx, ReasonInsufficientFunds)
		return
	}

	a.available = a.available.Sub(tx.Amount)
	a.record(tx)
}

func (a *Account) openDispute(ctx context.Context, tx transaction.Transaction) {
	if _, open := a.disputes[tx.ID]; open {
		// Informational only: a second dispute must never double-hold funds.
		a.logger.Log(ctx, log.LevelInfo, "transaction already has an associated dispute",
			log.Int("tx", int(tx.ID)),
		)

		return
	}

	amount, ok := a.DisputedDeposit(tx.ID)
	if !ok {
		a.reject(ctx, tx, ReasonUnknownDeposit)
		return
	}

	a.disputes[tx.ID] = transaction.NewDispute()
	a.holdFunds(amount)
}

func (a *Account) resolveDispute(ctx context.Context, tx transaction.Transaction) {
	dispute, ok := a.disputes[tx.ID]
	if !ok || !dispute.CanTransition() {
		a.reject(ctx, tx, ReasonDisputeNotOpen)
		return
	}

	amount, ok := a.DisputedDeposit(tx.ID)
	if !ok {
		// Unreachable while disputes are only opened against recorded
		// deposits; degrade to a no-op rather than panic.
		a.reject(ctx, tx, ReasonUnknownDeposit)
		return
	}

	dispute.Resolve()
	a.releaseHeldFunds(amount)
}

func (a *Account) chargebackDispute(ctx context.Context, tx transaction.Transaction) {
	dispute, ok := a.disputes[tx.ID]
	if !ok || !dispute.CanTransition() {
		a.reject(ctx, tx, ReasonDisputeNotOpen)
		return
	}

	amount, ok := a.DisputedDeposit(tx.ID)
	if !ok {
		a.reject(ctx, tx, ReasonUnknownDeposit)
		return
	}

	dispute.Chargeback()
	a.chargebackAndLock(amount)
}

// record stores an accepted transaction in arrival order. A duplicate id is
// an external-input error; the entry is overwritten in place, keeping its
// original position.
func (a *Account) record(tx transaction.Transaction) {
	if _, exists := a.history[tx.ID]; !exists {
		a.order = append(a.order, tx.ID)
	}

	a.history[tx.ID] = tx
}

// holdFunds moves the disputed amount from available to held. If intervening
// withdrawals already spent the disputed funds this drives available
// negative; the held increase offsets it exactly, so the total is unchanged.
func (a *Account) holdFunds(amount decimal.Decimal) {
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)
}

// releaseHeldFunds returns the held amount to the available funds.
func (a *Account) releaseHeldFunds(amount decimal.Decimal) {
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)
}

// chargebackAndLock withdraws the held amount from the account entirely and
// freezes it. This is the only operation that decreases total funds: the
// available decrease already happened when the dispute was opened, so only
// the held side is removed here.
func (a *Account) chargebackAndLock(amount decimal.Decimal) {
	a.held = a.held.Sub(amount)
	a.locked = true
}

func (a *Account) reject(ctx context.Context, tx transaction.Transaction, reason RejectReason) {
	a.logger.Log(ctx, log.LevelDebug, "transaction ignored",
		log.String("kind", string(tx.Kind)),
		log.Int("tx", int(tx.ID)),
		log.String("reason", string(reason)),
	)
}
