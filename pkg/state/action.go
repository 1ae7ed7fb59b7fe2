package state

import "errors"

// ErrActionInFlight is returned when an optimistic action is begun while
// another one is still pending. This is the guard that stands in for
// disabling the triggering control before the network call.
var ErrActionInFlight = errors.New("action already in flight")

// ActionState tracks one optimistic mutation through its lifecycle
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionPending
	ActionConfirmed
	ActionReverted
)

func (s ActionState) String() string {
	switch s {
	case ActionPending:
		return "pending"
	case ActionConfirmed:
		return "confirmed"
	case ActionReverted:
		return "reverted"
	default:
		return "idle"
	}
}

// Optimistic holds a value that is updated ahead of server confirmation.
// Begin snapshots the prior value and applies the optimistic one; Confirm
// adopts server truth; Revert restores the snapshot. Exactly one of
// Confirm or Revert ends each pending action.
type Optimistic[T any] struct {
	state ActionState
	prior T
	value T
}

// NewOptimistic creates an optimistic holder around an initial value
func NewOptimistic[T any](initial T) *Optimistic[T] {
	return &Optimistic[T]{state: ActionIdle, value: initial}
}

// Value returns the currently visible value
func (o *Optimistic[T]) Value() T {
	return o.value
}

// State returns the action lifecycle state
func (o *Optimistic[T]) State() ActionState {
	return o.state
}

// Begin applies an optimistic value, snapshotting the prior one.
// Returns ErrActionInFlight if a previous action has not settled.
func (o *Optimistic[T]) Begin(optimistic T) error {
	if o.state == ActionPending {
		return ErrActionInFlight
	}
	o.prior = o.value
	o.value = optimistic
	o.state = ActionPending
	return nil
}

// Confirm adopts the server's value, whatever the optimistic guess was
func (o *Optimistic[T]) Confirm(server T) {
	o.value = server
	o.state = ActionConfirmed
}

// Revert restores the pre-action snapshot and returns it
func (o *Optimistic[T]) Revert() T {
	o.value = o.prior
	o.state = ActionReverted
	return o.value
}
