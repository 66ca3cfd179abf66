// package routes implements the guard deciding whether a view renders or
// redirects, given its visibility class and the current session.
package routes

// Route targets used by guard decisions and the forced-logout policy.
const (
	HomeRoute  = "/"
	LoginRoute = "/login"
)

// Visibility is a route's declared requirement.
type Visibility int

const (
	Any         Visibility = iota // visible to anyone
	PublicOnly                    // only anonymous visitors (login, register)
	PrivateOnly                   // only authenticated visitors
)

func (v Visibility) String() string {
	switch v {
	case PublicOnly:
		return "public-only"
	case PrivateOnly:
		return "private-only"
	default:
		return "any"
	}
}

// Action is the outcome of a guard decision.
type Action int

const (
	Render        Action = iota // show the route's content
	RenderLoading               // session not yet resolved, show a placeholder
	Redirect                    // navigate to Decision.Target
)

// Decision is the guard's verdict for one (visibility, session) pair.
type Decision struct {
	Action Action
	Target string
}

// Session is the minimal view of session state the guard consumes.
type Session struct {
	Initialized   bool
	Authenticated bool
}

// Decide is a pure function of the route's visibility and the session.
//
// Until the session is initialized every route renders a loading
// placeholder; this prevents premature redirects during the race between
// page load and the initial session check. It must be re-evaluated on every
// session change so a forced logout immediately redirects a mounted
// private route.
func Decide(v Visibility, s Session) Decision {
	if !s.Initialized {
		return Decision{Action: RenderLoading}
	}

	switch v {
	case PrivateOnly:
		if !s.Authenticated {
			return Decision{Action: Redirect, Target: LoginRoute}
		}
	case PublicOnly:
		if s.Authenticated {
			return Decision{Action: Redirect, Target: HomeRoute}
		}
	}

	return Decision{Action: Render}
}
