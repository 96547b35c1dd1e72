package behaviortree

// Status is the result of polling a node for one tick.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusRunning
	// StatusError reports a structural problem (composite without children,
	// decorator without a child, zero repeat count), not a domain failure.
	StatusError
)

// statusNone marks a node that has not produced a result yet. Time-locking
// decorators use it to tell a fresh run from a pending result.
const statusNone Status = -1

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusRunning:
		return "RUNNING"
	case StatusError:
		return "ERROR"
	case statusNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}
