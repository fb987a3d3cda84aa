// package store implements the client-side state containers backing the
// dashboard: session (teacher/auth), playlists, and videos.
//
// Each store owns its slice of state exclusively and tracks one request
// lifecycle: a call marks the store pending and clears the previous error;
// its settlement transitions the store to fulfilled (data applied) or
// rejected (error message captured). Collection mutations happen in the
// same critical section as the lifecycle transition, so no partial
// application is observable.
//
// Concurrent calls on one store are last-settled-wins for the data, but a
// settlement only touches the lifecycle flags if it belongs to the most
// recently issued call; a stale or cancelled call's flags are discarded.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/praslea/lectern/internal/api"
)

// Lifecycle is the pending/error/success triple for a store's most recent
// settled call. Err is empty when no error is recorded.
type Lifecycle struct {
	Loading bool
	Success bool
	Err     string
	ErrKind api.ErrorKind // meaningful only when Err is non-empty
}

// tracker serializes a store's state and implements the request-token
// guard shared by all three stores.
type tracker struct {
	mu   sync.Mutex
	life Lifecycle
	seq  uint64
}

// begin registers a new in-flight call: the store goes pending, the
// previous error is cleared, and the call receives a request token.
func (t *tracker) begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.life.Loading = true
	t.life.Err = ""
	t.life.ErrKind = api.KindServer
	return t.seq
}

// beginFresh is begin for calls that also reset the success flag
// (register and login start each attempt from a clean slate).
func (t *tracker) beginFresh() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	t.life = Lifecycle{Loading: true}
	return t.seq
}

// resolve settles the call identified by req. The apply closure runs under
// the store lock together with the lifecycle transition. A settlement is
// dropped when a newer call owns the lifecycle or the caller's context is
// already cancelled; it reports whether it was applied.
func (t *tracker) resolve(ctx context.Context, req uint64, err error, apply func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if req != t.seq {
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	t.life.Loading = false
	if err != nil {
		t.life.Err = errorMessage(err)
		t.life.ErrKind = errorKind(err)
		return true
	}

	if apply != nil {
		apply()
	}
	return true
}

// errorMessage extracts the user-facing message for a settled failure.
func errorMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func errorKind(err error) api.ErrorKind {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return api.KindServer
}
