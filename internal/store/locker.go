package store

import (
	"sync"

	"github.com/tuckertucker/taskboard/internal/types"
)

// Locker serializes access per board id. The engine's load-modify-save cycle
// is a read-modify-write race when two requests hit the same board, so every
// writing caller must hold the board's lock across the whole cycle.
type Locker struct {
	mu    sync.Mutex
	locks map[types.BoardID]*sync.Mutex
}

// NewLocker creates an empty locker
func NewLocker() *Locker {
	return &Locker{locks: map[types.BoardID]*sync.Mutex{}}
}

// Lock acquires the board's lock and returns the matching unlock function.
// Locks are created on first use and kept for the life of the process; the
// set of boards a process touches is small.
func (l *Locker) Lock(id types.BoardID) func() {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
