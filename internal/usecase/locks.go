package usecase

import "sync"

// sessionLocks hands out one mutex per session ID.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

// Lock blocks until the session is free and returns its unlock function.
func (that *sessionLocks) Lock(sessionID string) func() {
	that.mu.Lock()
	lock, ok := that.locks[sessionID]
	if !ok {
		lock = &sessionLock{}
		that.locks[sessionID] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.Lock()

	return func() {
		lock.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, sessionID)
		}
		that.mu.Unlock()
	}
}
