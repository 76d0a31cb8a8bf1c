package review

import (
	"sync"
)

// busyGuard allows at most one in-flight mutation per scope key. A second
// submission for the same scope while one is still running gets rejected
// instead of queued; the client retries after the first one resolves.
type busyGuard struct {
	scopes sync.Map // map[string]*sync.Mutex
}

// tryAcquire attempts to claim the key. On success it returns a release
// function and true; on contention it returns false.
func (g *busyGuard) tryAcquire(key string) (func(), bool) {
	val, _ := g.scopes.LoadOrStore(key, &sync.Mutex{})
	mu := val.(*sync.Mutex)
	if !mu.TryLock() {
		return nil, false
	}
	return mu.Unlock, true
}
