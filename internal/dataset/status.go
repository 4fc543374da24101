// internal/dataset/status.go
package dataset

// Status tracks the dataset load lifecycle. The chain only moves
// forward; Error absorbs every state and is never left.
type Status string

const (
	StatusIdle           Status = "idle"
	StatusLoadingInitial Status = "loading_initial"
	StatusInitialLoaded  Status = "initial_loaded"
	StatusLoadingFull    Status = "loading_full"
	StatusFullyLoaded    Status = "fully_loaded"
	StatusError          Status = "error"
)

// rank orders the forward chain so regressions can be refused.
func (s Status) rank() int {
	switch s {
	case StatusIdle:
		return 0
	case StatusLoadingInitial:
		return 1
	case StatusInitialLoaded:
		return 2
	case StatusLoadingFull:
		return 3
	case StatusFullyLoaded:
		return 4
	case StatusError:
		return 5
	default:
		return -1
	}
}

// CanTransition reports whether moving from s to next is a legal
// forward step. Error is absorbing: once entered nothing leaves it.
func (s Status) CanTransition(next Status) bool {
	if s == StatusError {
		return false
	}
	if next == StatusError {
		return true
	}
	return next.rank() > s.rank()
}
