// internal/dataset/store.go
package dataset

import (
	"fmt"
	"sync"
)

// Store holds the published snapshot and the load status for the
// lifetime of the process. It is created once at startup and injected
// into every consumer; a phase replaces the snapshot atomically under
// the lock, never incrementally.
type Store struct {
	mu       sync.RWMutex
	snapshot *Snapshot
	status   Status
	err      error
}

// NewStore creates an empty store in the idle state.
func NewStore() *Store {
	return &Store{
		snapshot: &Snapshot{},
		status:   StatusIdle,
	}
}

// Snapshot returns the currently published snapshot. The returned value
// is shared and read-only.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Status returns the current load status.
func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Err returns the recorded load error, if any.
func (s *Store) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Loading reports whether no usable snapshot has been published yet.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status == StatusIdle || s.status == StatusLoadingInitial
}

// SetStatus advances the load status. Transitions that would regress
// the chain are refused so a late preview publish can never clobber
// full data.
func (s *Store) SetStatus(next Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.status.CanTransition(next) {
		return fmt.Errorf("illegal status transition %s -> %s", s.status, next)
	}
	s.status = next
	return nil
}

// Publish atomically replaces the snapshot and advances the status.
func (s *Store) Publish(snap *Snapshot, next Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.status.CanTransition(next) {
		return fmt.Errorf("illegal status transition %s -> %s", s.status, next)
	}
	s.snapshot = snap
	s.status = next
	return nil
}

// Fail records the load error and moves to the absorbing error state.
// Previously published data stays visible, only the status changes.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusError {
		return
	}
	s.status = StatusError
	s.err = err
}
