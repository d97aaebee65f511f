package app

// State represents the current application state.
type State int

const (
	StateConnecting State = iota // Probing backend auth/reachability
	StateReady                   // Normal operation
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
