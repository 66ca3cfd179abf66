// package resources applies one reconciliation pattern to every feature
// collection (videos, comments, tweets, like states, subscriptions).
//
// Each operation runs the same three phases against its [Collection]:
// Begin (loading on, error cleared), a merge on success (replace, prepend,
// update-by-id, remove-by-id, or field patch), or Fail (loading off, error
// recorded, items untouched). Operations settle in completion order, not
// dispatch order; the last settlement wins. A collection closed on view
// teardown silently drops late settlements.
package resources
