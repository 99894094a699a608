package domain

// State is the checkout state machine:
//
//	Idle -> Submitting -> {Succeeded, Failed}
//	Idle -> RequiresAuth   (no authenticated session; nothing submitted)
type State int

const (
	StateIdle State = iota
	StateRequiresAuth
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRequiresAuth:
		return "requires-auth"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Outcome is what the storefront shows after a checkout attempt
// resolves.
type Outcome struct {
	State   State
	OrderID int64
	Message string
}
