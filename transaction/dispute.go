package transaction

// DisputeState represents the lifecycle state of a claim against a deposit.
//
// Semantics:
//   - DISPUTED: claim opened; the deposited funds are held.
//   - RESOLVED: claim dismissed; held funds were released back to available.
//   - CHARGED_BACK: claim upheld; held funds were withdrawn and the account frozen.
//
// Transitions:
//
//	DISPUTED → RESOLVED | CHARGED_BACK
//	RESOLVED, CHARGED_BACK → (terminal)
type DisputeState string

const (
	// StateDisputed marks a freshly opened claim with funds on hold.
	StateDisputed DisputeState = "DISPUTED"
	// StateResolved marks a claim dismissed in the client's favor.
	StateResolved DisputeState = "RESOLVED"
	// StateChargedBack marks a claim upheld against the client.
	StateChargedBack DisputeState = "CHARGED_BACK"
)

// Dispute is a claim that a previously processed deposit was erroneous or
// fraudulent and should be reversed. It references the original transaction by
// id and is finished by either a resolve (releasing the held funds back to
// available) or a chargeback (removing the held funds and freezing the
// account).
//
// A dispute leaves StateDisputed exactly once. The terminal states accept no
// further transitions; callers must check CanTransition before calling Resolve
// or Chargeback so a second outcome never moves funds again.
type Dispute struct {
	state DisputeState
}

// NewDispute opens a claim in StateDisputed.
func NewDispute() *Dispute {
	return &Dispute{state: StateDisputed}
}

// State returns the current lifecycle state.
func (d *Dispute) State() DisputeState {
	return d.state
}

// CanTransition reports whether the dispute can still be finished, either to a
// resolve or a chargeback.
func (d *Dispute) CanTransition() bool {
	return d.state == StateDisputed
}

// Resolve marks the claim dismissed. Callers must check CanTransition first.
func (d *Dispute) Resolve() {
	d.state = StateResolved
}

// Chargeback marks the claim upheld. Callers must check CanTransition first.
func (d *Dispute) Chargeback() {
	d.state = StateChargedBack
}
