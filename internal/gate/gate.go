// Package gate decides what a protected view may render for a given
// session state. It is pure: it never navigates and never mutates the
// session, it only maps state to a decision the view layer consumes.
package gate

import (
	"github.com/angussewell/lead-magnet-library/internal/session"
)

// Action is the navigation decision for a protected view.
type Action int

const (
	// ActionRedirect sends the user to the login view and suppresses
	// all protected content.
	ActionRedirect Action = iota
	// ActionRender allows the protected view to render.
	ActionRender
)

// Evaluate returns the gate decision for the given session snapshot.
// A session still mid-login counts as not yet authenticated, so no
// protected content flashes while a verdict is outstanding.
func Evaluate(snap session.Snapshot) Action {
	if snap.State != session.StateAuthenticated {
		return ActionRedirect
	}
	return ActionRender
}

// OverlayVisible reports whether the one-time welcome interstitial
// should cover the protected content. contentReady reflects whether
// the view's own data dependency has settled, which keeps the overlay
// from flashing before the page has anything to show behind it.
func OverlayVisible(snap session.Snapshot, contentReady bool) bool {
	return snap.State == session.StateAuthenticated && contentReady && snap.WelcomePending
}
