package session

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestRefresher(t *testing.T) {
	t.Run("Arms While Authenticated", func(t *testing.T) {
		var refreshes atomic.Int32
		svc, store, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/users/refresh-token" {
				refreshes.Add(1)
			}
			writeEnvelope(w, "null")
		}))

		refresher := NewRefresher(svc, 10*time.Millisecond, nil)
		refresher.Start(context.Background())
		defer refresher.Stop()

		if refresher.Scheduled() {
			t.Error("expected no schedule before authentication")
		}

		store.setIdentity(userFixture())
		waitFor(t, refresher.Scheduled, "expected scheduler to arm after login")
		waitFor(t, func() bool { return refreshes.Load() >= 2 }, "expected periodic refresh calls")
	})

	t.Run("Disarms On Logout", func(t *testing.T) {
		svc, store, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, "null")
		}))

		refresher := NewRefresher(svc, 10*time.Millisecond, nil)
		refresher.Start(context.Background())
		defer refresher.Stop()

		store.setIdentity(userFixture())
		waitFor(t, refresher.Scheduled, "expected scheduler to arm after login")

		store.setIdentity(nil)
		waitFor(t, func() bool { return !refresher.Scheduled() }, "expected scheduler to disarm after logout")
	})

	t.Run("Arms When Already Authenticated At Start", func(t *testing.T) {
		svc, store, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, "null")
		}))
		store.setIdentity(userFixture())

		refresher := NewRefresher(svc, time.Hour, nil)
		refresher.Start(context.Background())
		defer refresher.Stop()

		waitFor(t, refresher.Scheduled, "expected scheduler armed for a restored session")
	})

	t.Run("Stop Halts Refreshes", func(t *testing.T) {
		var refreshes atomic.Int32
		svc, store, _ := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/v1/users/refresh-token" {
				refreshes.Add(1)
			}
			writeEnvelope(w, "null")
		}))
		store.setIdentity(userFixture())

		refresher := NewRefresher(svc, 10*time.Millisecond, nil)
		refresher.Start(context.Background())
		waitFor(t, func() bool { return refreshes.Load() >= 1 }, "expected at least one refresh")

		refresher.Stop()
		after := refreshes.Load()
		time.Sleep(50 * time.Millisecond)

		// a call already in flight at Stop may still land; no new ticks fire
		if refreshes.Load() > after+1 {
			t.Errorf("expected no new refreshes after Stop, got %d -> %d", after, refreshes.Load())
		}
	})
}
