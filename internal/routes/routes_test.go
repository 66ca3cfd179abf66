package routes

import "testing"

func TestDecide(t *testing.T) {
	t.Run("Before Initialization Everything Loads", func(t *testing.T) {
		for _, v := range []Visibility{Any, PublicOnly, PrivateOnly} {
			d := Decide(v, Session{Initialized: false, Authenticated: false})
			if d.Action != RenderLoading {
				t.Errorf("%s: expected loading placeholder before initialization, got %v", v, d.Action)
			}
		}

		// even a stale authenticated flag must not short-circuit the gate
		d := Decide(PrivateOnly, Session{Initialized: false, Authenticated: true})
		if d.Action != RenderLoading {
			t.Errorf("expected loading placeholder, got %v", d.Action)
		}
	})

	t.Run("After Initialization", func(t *testing.T) {
		cases := []struct {
			name       string
			visibility Visibility
			authed     bool
			action     Action
			target     string
		}{
			{"Any Anonymous", Any, false, Render, ""},
			{"Any Authenticated", Any, true, Render, ""},
			{"Private Anonymous", PrivateOnly, false, Redirect, LoginRoute},
			{"Private Authenticated", PrivateOnly, true, Render, ""},
			{"Public Anonymous", PublicOnly, false, Render, ""},
			{"Public Authenticated", PublicOnly, true, Redirect, HomeRoute},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := Decide(tc.visibility, Session{Initialized: true, Authenticated: tc.authed})
				if d.Action != tc.action {
					t.Errorf("expected action %v, got %v", tc.action, d.Action)
				}
				if d.Target != tc.target {
					t.Errorf("expected target %q, got %q", tc.target, d.Target)
				}
			})
		}
	})

	t.Run("Forced Logout Transition", func(t *testing.T) {
		// a mounted private route re-evaluates after the session is cleared
		before := Decide(PrivateOnly, Session{Initialized: true, Authenticated: true})
		if before.Action != Render {
			t.Fatalf("expected render while authenticated, got %v", before.Action)
		}

		after := Decide(PrivateOnly, Session{Initialized: true, Authenticated: false})
		if after.Action != Redirect || after.Target != LoginRoute {
			t.Errorf("expected immediate redirect to login, got %+v", after)
		}
	})
}
