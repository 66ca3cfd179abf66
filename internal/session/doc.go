// package session owns the client-side belief about whether, and as whom,
// the visitor is authenticated.
//
// The [Store] is a single process-wide mutable cell. Its only writers are
// the auth operations on [Service] and the [Coordinator]'s forced-logout
// path; everything else reads snapshots or watches for changes. The
// [Initializer] performs the one-time silent session restore on startup,
// and the [Refresher] keeps an established session alive with periodic
// token rotation for as long as an identity is present.
package session
