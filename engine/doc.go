// Package engine routes an ordered transaction stream to per-client accounts
// and exposes the final balance snapshots.
package engine
