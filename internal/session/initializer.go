package session

import (
	"context"
	"sync"

	"github.com/videotube/vtx/internal/api"
)

// Initializer performs the one-time silent session restore on startup.
//
// The first caller of Ensure issues the current-user fetch; concurrent
// callers wait on the same in-flight result instead of duplicating the
// request, and later callers return immediately.
type Initializer struct {
	svc *Service

	mu      sync.Mutex
	started bool
	done    chan struct{}
	err     error
}

// NewInitializer creates an Initializer for the given auth service.
func NewInitializer(svc *Service) *Initializer {
	return &Initializer{svc: svc}
}

// Ensure resolves the session exactly once per process. An authorization
// failure is the normal outcome for an anonymous visitor and is not
// reported as an error; network failures are. In every case the store ends
// up initialized.
func (in *Initializer) Ensure(ctx context.Context) error {
	in.mu.Lock()
	if in.started {
		done := in.done
		in.mu.Unlock()
		select {
		case <-done:
			return in.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	in.started = true
	in.done = make(chan struct{})
	in.mu.Unlock()

	_, err := in.svc.CurrentUser(ctx)
	if err != nil && api.IsAuthorization(err) {
		// anonymous visitor, expected
		err = nil
	}

	in.err = err
	close(in.done)
	return err
}
