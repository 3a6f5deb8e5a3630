package vgatext

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// SpinLock is a busy-waiting mutual exclusion lock. It never parks the
// caller, so it can be taken from contexts that must not block on the
// scheduler. The zero value is unlocked.
type SpinLock struct {
	state atomic.Uint32
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. Unlocking an unlocked SpinLock panics.
func (l *SpinLock) Unlock() {
	if !l.state.CompareAndSwap(1, 0) {
		panic("vgatext: unlock of unlocked SpinLock")
	}
}

var _ sync.Locker = (*SpinLock)(nil)
