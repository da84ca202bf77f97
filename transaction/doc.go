// Package transaction defines the immutable ledger events consumed by the
// payments engine and the dispute lifecycle attached to them.
//
// A Transaction is a fact: once constructed it is never mutated. Disputes are
// the only mutable values in this package and follow a small terminal state
// machine (see Dispute).
package transaction
