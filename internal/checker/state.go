package checker

// State is where the controller is in a check.
type State int

// The states of the controller.
const (
	StateIdle       State = iota // nothing typed, or a result has settled
	StateValidating              // the input is valid and waits for submission
	StateInvalid                 // the input cannot be submitted
	StateChecking
	StateAvailable
	StateUnavailable
	StateReserved
	StatePaused
	StateError
)

// String gives the name of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateChecking:
		return "checking"
	case StateAvailable:
		return "available"
	case StateUnavailable:
		return "unavailable"
	case StateReserved:
		return "reserved"
	case StatePaused:
		return "paused"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// IsTerminal checks whether the state shows the outcome of a check.
func (s State) IsTerminal() bool {
	switch s {
	case StateAvailable, StateUnavailable, StateReserved, StatePaused, StateError:
		return true
	default:
		return false
	}
}
