package session

import (
	"testing"
	"time"

	"github.com/videotube/vtx/internal/api"
	"github.com/videotube/vtx/internal/routes"
)

func TestCoordinator(t *testing.T) {
	newCoordinator := func(t *testing.T) (*Store, *api.Notifier, *Coordinator) {
		t.Helper()
		store := NewStore(nil)
		notifier := &api.Notifier{}
		coord := NewCoordinator(store, notifier, nil)
		coord.Start()
		t.Cleanup(coord.Stop)
		return store, notifier, coord
	}

	authFailure := func() api.FailureEvent {
		return api.FailureEvent{
			Err:       &api.Error{Kind: api.KindAuthorization, Message: "jwt expired", Status: 401},
			RequestID: "req-1",
			Path:      "/api/v1/videos/all-videos",
		}
	}

	t.Run("Authorization Failure Forces Logout And Redirects", func(t *testing.T) {
		store, notifier, coord := newCoordinator(t)
		store.setIdentity(userFixture())
		store.markInitialized()

		notifier.Publish(authFailure())

		select {
		case target := <-coord.Redirects():
			if target != routes.LoginRoute {
				t.Errorf("expected redirect to %s, got %s", routes.LoginRoute, target)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("expected a redirect signal")
		}

		state := store.State()
		if state.Authenticated() {
			t.Error("expected identity cleared")
		}
		if state.LastError == nil || state.LastError.Kind != api.KindAuthorization {
			t.Error("expected the triggering error recorded")
		}
		if !state.Initialized {
			t.Error("forced logout must not revert initialization")
		}
	})

	t.Run("Concurrent Failures Produce One Redirect", func(t *testing.T) {
		store, notifier, coord := newCoordinator(t)
		store.setIdentity(userFixture())

		// several in-flight requests fail after the session expired
		notifier.Publish(authFailure())
		notifier.Publish(authFailure())
		notifier.Publish(authFailure())

		select {
		case <-coord.Redirects():
		case <-time.After(2 * time.Second):
			t.Fatal("expected the first redirect")
		}

		select {
		case <-coord.Redirects():
			t.Error("expected no second redirect for an already-cleared session")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("Anonymous Authorization Failure Does Not Redirect", func(t *testing.T) {
		_, notifier, coord := newCoordinator(t)

		notifier.Publish(authFailure())

		select {
		case <-coord.Redirects():
			t.Error("expected no redirect when nobody is signed in")
		case <-time.After(100 * time.Millisecond):
		}

		select {
		case notice := <-coord.Notices():
			if notice.Kind != api.KindAuthorization {
				t.Errorf("expected authorization notice, got %v", notice.Kind)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("expected a notice either way")
		}
	})

	t.Run("Other Failures Pass Through As Notices", func(t *testing.T) {
		store, notifier, coord := newCoordinator(t)
		store.setIdentity(userFixture())

		notifier.Publish(api.FailureEvent{
			Err:  &api.Error{Kind: api.KindServer, Message: "server error", Status: 500},
			Path: "/api/v1/videos/all-videos",
		})

		select {
		case notice := <-coord.Notices():
			if notice.Message != "server error" {
				t.Errorf("expected server error notice, got %q", notice.Message)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("expected a notice")
		}

		if !store.State().Authenticated() {
			t.Error("non-authorization failures must not clear the session")
		}
	})
}
