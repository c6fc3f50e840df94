// Package session implements the client-side authentication state
// machine. It owns the transition between unauthenticated,
// authenticating, and authenticated states, the one-time welcome
// flag, and the minimum-latency policy applied to failed login
// attempts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/angussewell/lead-magnet-library/internal/models"
	"go.uber.org/zap"
)

// State identifies the current authentication state of the session.
type State int

const (
	// StateUnauthenticated is the initial state and the state after
	// logout or a failed login attempt.
	StateUnauthenticated State = iota
	// StateAuthenticating means a login attempt is in flight.
	StateAuthenticating
	// StateAuthenticated means the last login attempt was approved.
	StateAuthenticated
)

// String returns a short name for the state, for logging.
func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Verifier checks one credential pair against the remote service.
type Verifier interface {
	// Verify returns the verdict for the given credentials. A non-nil
	// error means the verifier could not be reached or answered
	// unintelligibly at the transport level.
	Verify(ctx context.Context, cred models.Credential) (models.Verdict, error)
}

// FailureFloor is the minimum wall-clock duration of a failed login
// attempt. Failures faster than this are padded out so a rejection is
// not distinguishable by timing from a slow verification, and so each
// guessed credential costs at least this long.
const FailureFloor = 10 * time.Second

// Snapshot is an immutable view of the session for gating and display.
type Snapshot struct {
	// State is the authentication state at the time of the snapshot.
	State State
	// DisplayName is the authenticated user's first name, empty
	// unless State is StateAuthenticated.
	DisplayName string
	// WelcomePending reports whether the one-time welcome notice has
	// not yet been acknowledged for this login.
	WelcomePending bool
}

// Manager is the session state machine. One instance is created at
// program start, injected into every protected view, and reset in
// place on logout rather than destroyed.
type Manager struct {
	verifier Verifier
	log      *zap.Logger

	// floor, now and sleep are fixed in production and swapped in
	// tests to keep the timing properties deterministic.
	floor time.Duration
	now   func() time.Time
	sleep func(time.Duration)

	mu             sync.Mutex
	state          State
	displayName    string
	welcomePending bool
	// attempt increases on every login attempt and every logout.
	// A verifier result is applied only if the attempt it belongs to
	// is still the current one, so a late-resolving approval cannot
	// overwrite a session that has since logged out or retried.
	attempt uint64
}

// NewManager returns a Manager in the unauthenticated state.
func NewManager(verifier Verifier, log *zap.Logger) *Manager {
	return &Manager{
		verifier: verifier,
		log:      log,
		floor:    FailureFloor,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Snapshot returns the current session state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		State:          m.state,
		DisplayName:    m.displayName,
		WelcomePending: m.welcomePending,
	}
}

// Login verifies the given credentials and reports whether the
// session is now authenticated. Both fields are passed through to the
// verifier unvalidated; input validation is the view's concern.
//
// Transport failures, denials, and malformed verdicts all fold into a
// false return, never an error. On any of those, Login does not
// return before FailureFloor has elapsed since it was invoked. An
// approved verdict returns true as soon as the verifier resolves,
// with no added delay.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	start := m.now()

	m.mu.Lock()
	m.attempt++
	id := m.attempt
	m.state = StateAuthenticating
	m.displayName = ""
	m.welcomePending = false
	m.mu.Unlock()

	m.log.Debug("login attempt started", zap.String("email", email))

	verdict, err := m.verifier.Verify(ctx, models.Credential{Email: email, Password: password})
	if err != nil {
		m.log.Warn("credential verification unreachable", zap.Error(err))
		return m.deny(start, id)
	}
	if !verdict.Approved || verdict.DisplayName == "" {
		m.log.Info("credentials denied", zap.String("reason", verdict.Reason))
		return m.deny(start, id)
	}

	m.mu.Lock()
	if m.attempt != id {
		m.mu.Unlock()
		m.log.Info("discarding stale login result", zap.Uint64("attempt", id))
		return false
	}
	m.state = StateAuthenticated
	m.displayName = verdict.DisplayName
	m.welcomePending = true
	m.mu.Unlock()

	m.log.Info("login approved", zap.String("displayName", verdict.DisplayName))
	return true
}

// deny resets the session to unauthenticated (unless the attempt has
// been superseded) and pads the failure out to the timing floor.
func (m *Manager) deny(start time.Time, id uint64) bool {
	m.mu.Lock()
	stale := m.attempt != id
	if !stale {
		m.state = StateUnauthenticated
		m.displayName = ""
		m.welcomePending = false
	}
	m.mu.Unlock()

	// A superseded attempt's outcome no longer carries information
	// about the current session, so only live failures are padded.
	if stale {
		return false
	}

	if elapsed := m.now().Sub(start); elapsed < m.floor {
		m.sleep(m.floor - elapsed)
	}
	return false
}

// Logout unconditionally resets the session to unauthenticated and
// invalidates any in-flight login attempt. Idempotent; no network.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempt++
	m.state = StateUnauthenticated
	m.displayName = ""
	m.welcomePending = false
}

// AcknowledgeWelcome marks the one-time welcome notice as seen.
// Idempotent; a no-op unless the session is authenticated.
func (m *Manager) AcknowledgeWelcome() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateAuthenticated {
		m.welcomePending = false
	}
}
