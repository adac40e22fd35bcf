package gateway

import "sync"

// renewResult is the settled outcome of one renewal call: either a usable new
// access token, or the error the renewal failed with.
type renewResult struct {
	token string
	err   error
}

// renewer coordinates concurrent renewal attempts into a single in-flight
// backend call. The first caller to join while no renewal is active becomes
// the starter and must settle; everyone else waits on the same outcome.
//
// It is created empty, populated on the first contended 401, and drained and
// reset when the renewal settles, so a later 401 can trigger a fresh renewal.
type renewer struct {
	mu      sync.Mutex
	active  bool
	waiters []chan renewResult
}

func newRenewer() *renewer {
	return &renewer{}
}

// join registers the caller for the next settlement. The returned channel
// receives exactly one result. started is true when the caller must perform
// the renewal call and settle it.
func (r *renewer) join() (<-chan renewResult, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := make(chan renewResult, 1)
	r.waiters = append(r.waiters, ch)
	if r.active {
		return ch, false
	}
	r.active = true
	return ch, true
}

// settle delivers res to every waiter in enqueue order and resets the renewer.
func (r *renewer) settle(res renewResult) {
	r.mu.Lock()
	waiters := r.waiters
	r.waiters = nil
	r.active = false
	r.mu.Unlock()

	for _, ch := range waiters {
		ch <- res
	}
}
