package session

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/models"
	"github.com/videotube/vtx/internal/shared"
)

// State is a snapshot of the session cell.
//
// Identity is nil iff the visitor is unauthenticated; it is replaced
// wholesale on every auth-affecting operation, never field-patched from
// partial responses (account updates are the one defined exception).
// Initialized latches true exactly once per process and never reverts.
type State struct {
	Identity        *models.User
	Loading         bool
	Initialized     bool
	TokenRefreshing bool
	LastError       *api.Error
}

// Authenticated reports whether an identity is present.
func (s State) Authenticated() bool {
	return s.Identity != nil
}

// Store holds the session state and notifies watchers on every mutation.
type Store struct {
	mu       sync.RWMutex
	state    State
	watchers []chan State
	logger   *log.Logger
}

// NewStore creates a Store in the pre-initialization state.
func NewStore(logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewSilentLogger()
	}
	return &Store{logger: logger}
}

// State returns a snapshot of the current session. The identity is copied
// so readers cannot mutate the cell through the returned pointer.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	st := s.state
	if st.Identity != nil {
		identity := *st.Identity
		st.Identity = &identity
	}
	return st
}

// Watch registers a channel that receives a snapshot after every mutation.
// The channel is buffered; when a watcher lags, stale snapshots are dropped
// in favor of the latest one.
func (s *Store) Watch() <-chan State {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	s.watchers = append(s.watchers, ch)
	return ch
}

// Unwatch removes a watcher registered with Watch and closes it.
func (s *Store) Unwatch(ch <-chan State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.watchers {
		if w == ch {
			s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
			close(w)
			return
		}
	}
}

// broadcast must be called with the write lock held.
func (s *Store) broadcast() {
	st := s.snapshot()
	for _, w := range s.watchers {
		select {
		case w <- st:
		default:
			select {
			case <-w:
			default:
			}
			select {
			case w <- st:
			default:
			}
		}
	}
}

// mutate applies fn under the write lock and notifies watchers.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	initialized := s.state.Initialized
	fn(&s.state)
	// initialized never reverts once latched
	if initialized {
		s.state.Initialized = true
	}
	s.broadcast()
}

// begin marks an operation in flight and clears the previous error.
func (s *Store) begin() {
	s.mutate(func(st *State) {
		st.Loading = true
		st.LastError = nil
	})
}

// fail records a terminal failure for the in-flight operation.
func (s *Store) fail(err *api.Error) {
	s.mutate(func(st *State) {
		st.Loading = false
		st.LastError = err
	})
}

// setIdentity replaces the identity wholesale and ends the in-flight operation.
func (s *Store) setIdentity(user *models.User) {
	s.mutate(func(st *State) {
		st.Loading = false
		st.Identity = user
		st.LastError = nil
	})
}

// patchIdentity applies an explicit account-update to the current identity.
// A nil identity is left untouched.
func (s *Store) patchIdentity(fn func(*models.User)) {
	s.mutate(func(st *State) {
		st.Loading = false
		if st.Identity != nil {
			fn(st.Identity)
		}
	})
}

// markInitialized latches the initialized flag.
func (s *Store) markInitialized() {
	s.mutate(func(st *State) {
		st.Initialized = true
	})
}

// setRefreshing flips the background token-refresh flag.
func (s *Store) setRefreshing(refreshing bool) {
	s.mutate(func(st *State) {
		st.TokenRefreshing = refreshing
	})
}

// ForceLogout clears the identity in response to an authorization failure
// observed on any in-flight request. The triggering error is recorded.
func (s *Store) ForceLogout(err *api.Error) {
	s.logger.Warn("session invalidated", "reason", err.Message, "status", err.Status)
	s.mutate(func(st *State) {
		st.Identity = nil
		st.LastError = err
	})
}
