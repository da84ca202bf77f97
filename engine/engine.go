package engine

import (
	"context"
	"sort"

	"github.com/LerianStudio/lib-uncommons/v2/uncommons/log"
	"github.com/shopspring/decimal"

	"github.com/LerianStudio/payments-engine/account"
	"github.com/LerianStudio/payments-engine/transaction"
)

// Ledger owns every client account seen so far and routes each incoming
// transaction to the right one. Accounts are created on a client's first
// accepted deposit and never removed.
//
// The Ledger is not safe for concurrent use: transactions are applied
// strictly in input order, one at a time.
type Ledger struct {
	accounts map[transaction.ClientID]*account.Account
	logger   log.Logger
}

// New creates an empty ledger. A nil logger is replaced with a no-op logger.
func New(logger log.Logger) *Ledger {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Ledger{
		accounts: make(map[transaction.ClientID]*account.Account),
		logger:   logger,
	}
}

// Apply routes one transaction to its client's account, creating the account
// if this is the client's first accepted deposit. Any other kind arriving for
// an unknown client is dropped: no account exists to withdraw from or dispute
// against, and nothing but a first deposit ever creates one.
func (l *Ledger) Apply(ctx context.Context, tx transaction.Transaction) {
	if acc, ok := l.accounts[tx.Client]; ok {
		acc.Apply(ctx, tx)
		return
	}

	if tx.Kind != transaction.KindDeposit || !tx.ValidAmount() {
		l.logger.Log(ctx, log.LevelDebug, "transaction for unknown client dropped",
			log.String("kind", string(tx.Kind)),
			log.Int("client", int(tx.Client)),
			log.Int("tx", int(tx.ID)),
		)

		return
	}

	acc := account.New(l.logger.With(log.Int("client", int(tx.Client))))
	acc.Apply(ctx, tx)
	l.accounts[tx.Client] = acc
}

// Snapshot is the read-only view of one client's final balances.
type Snapshot struct {
	Client    transaction.ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Snapshots returns one snapshot per known client. Row order is not part of
// the contract; snapshots are sorted by client id to keep output
// deterministic.
func (l *Ledger) Snapshots() []Snapshot {
	out := make([]Snapshot, 0, len(l.accounts))

	for id, acc := range l.accounts {
		out = append(out, Snapshot{
			Client:    id,
			Available: acc.Available(),
			Held:      acc.Held(),
			Total:     acc.Total(),
			Locked:    acc.Locked(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Client < out[j].Client })

	return out
}
