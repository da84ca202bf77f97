// Package account implements the per-client ledger state machine.
//
// An Account owns one client's available and held funds, the history of
// accepted deposits and withdrawals, and the disputes opened against them.
// Apply is the sole mutator and is applied strictly in input order; an Account
// is not safe for concurrent use.
//
// Business-rule rejections (insufficient funds, unknown dispute targets,
// transactions against a locked account, and so on) are not errors: the
// offending transaction simply has no effect. Rejections annotate debug logs
// but never alter control flow.
package account
