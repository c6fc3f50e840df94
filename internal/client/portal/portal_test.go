package portal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/angussewell/lead-magnet-library/internal/models"
	"github.com/angussewell/lead-magnet-library/internal/session"
	"go.uber.org/zap"
)

// fakeSession implements Session for testing.
type fakeSession struct {
	snap         session.Snapshot
	loginResult  bool
	loginCalls   int
	logoutCalls  int
	acknowledged bool
}

func (f *fakeSession) Snapshot() session.Snapshot { return f.snap }

func (f *fakeSession) Login(ctx context.Context, email, password string) bool {
	f.loginCalls++
	return f.loginResult
}

func (f *fakeSession) Logout() {
	f.logoutCalls++
	f.snap = session.Snapshot{State: session.StateUnauthenticated}
}

func (f *fakeSession) AcknowledgeWelcome() {
	f.acknowledged = true
	f.snap.WelcomePending = false
}

// fakeCatalog implements CatalogLister for testing.
type fakeCatalog struct {
	products []models.ProductRecord
	err      error
	calls    int
}

func (f *fakeCatalog) List(ctx context.Context) ([]models.ProductRecord, error) {
	f.calls++
	return f.products, f.err
}

func newPortal(sess Session, cat CatalogLister, input string) (*Portal, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(sess, cat, strings.NewReader(input), out, zap.NewNop()), out
}

func authedSnap(welcomePending bool) session.Snapshot {
	return session.Snapshot{
		State:          session.StateAuthenticated,
		DisplayName:    "Alex",
		WelcomePending: welcomePending,
	}
}

func TestLoginView_FailureRendersGenericMessage(t *testing.T) {
	sess := &fakeSession{loginResult: false}
	p, out := newPortal(sess, &fakeCatalog{}, "a@b.c\nwrong\n")

	if p.LoginView(context.Background()) {
		t.Fatal("LoginView = true; want false")
	}
	if sess.loginCalls != 1 {
		t.Errorf("login called %d times; want 1", sess.loginCalls)
	}
	if !strings.Contains(out.String(), "Authentication failed. Please verify your credentials or try again.") {
		t.Errorf("output missing generic failure message:\n%s", out.String())
	}
}

func TestLoginView_Success(t *testing.T) {
	sess := &fakeSession{loginResult: true}
	p, out := newPortal(sess, &fakeCatalog{}, "a@b.c\npw\n")

	if !p.LoginView(context.Background()) {
		t.Fatal("LoginView = false; want true")
	}
	if strings.Contains(out.String(), "Authentication failed") {
		t.Errorf("success output contains failure message:\n%s", out.String())
	}
}

func TestLibraryView_GatedWhenUnauthenticated(t *testing.T) {
	cat := &fakeCatalog{products: []models.ProductRecord{{ID: "p1", Name: "Playbook"}}}
	sess := &fakeSession{snap: session.Snapshot{State: session.StateUnauthenticated}}
	p, out := newPortal(sess, cat, "")

	if p.LibraryView(context.Background()) {
		t.Fatal("LibraryView = true for unauthenticated session; want false")
	}
	if cat.calls != 0 {
		t.Errorf("catalog fetched %d times behind the gate; want 0", cat.calls)
	}
	if strings.Contains(out.String(), "Playbook") {
		t.Errorf("protected content leaked through the gate:\n%s", out.String())
	}
}

func TestLibraryView_GatedWhileAuthenticating(t *testing.T) {
	sess := &fakeSession{snap: session.Snapshot{State: session.StateAuthenticating}}
	p, _ := newPortal(sess, &fakeCatalog{}, "")

	if p.LibraryView(context.Background()) {
		t.Fatal("LibraryView = true for mid-flight session; want false")
	}
}

func TestLibraryView_FetchErrorShowsBanner(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	p, out := newPortal(sess, &fakeCatalog{err: errors.New("http 500")}, "")

	if !p.LibraryView(context.Background()) {
		t.Fatal("LibraryView = false; want true (view rendered, with error state)")
	}
	got := out.String()
	if !strings.Contains(got, "Failed to load product library") {
		t.Errorf("output missing error banner:\n%s", got)
	}
	if strings.Contains(got, "currently empty") {
		t.Errorf("fetch failure rendered as empty library:\n%s", got)
	}
}

func TestLibraryView_WelcomeShownOnceThenListing(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(true)}
	cat := &fakeCatalog{products: []models.ProductRecord{{ID: "p1", Name: "Playbook"}}}
	p, out := newPortal(sess, cat, "\n")

	if !p.LibraryView(context.Background()) {
		t.Fatal("LibraryView = false; want true")
	}
	got := out.String()
	if !strings.Contains(got, "Welcome, Alex!") {
		t.Errorf("output missing welcome notice:\n%s", got)
	}
	if !strings.Contains(got, "Playbook") {
		t.Errorf("output missing product listing:\n%s", got)
	}
	if !sess.acknowledged {
		t.Error("welcome was not acknowledged after dismissal")
	}

	// Second visit: the notice never reappears for this session.
	out.Reset()
	if !p.LibraryView(context.Background()) {
		t.Fatal("second LibraryView = false; want true")
	}
	if strings.Contains(out.String(), "Welcome, Alex!") {
		t.Errorf("welcome notice reappeared:\n%s", out.String())
	}
}

func TestLibraryView_EmptyCatalog(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	p, out := newPortal(sess, &fakeCatalog{}, "")

	if !p.LibraryView(context.Background()) {
		t.Fatal("LibraryView = false; want true")
	}
	if !strings.Contains(out.String(), "Your library is currently empty.") {
		t.Errorf("output missing empty-library notice:\n%s", out.String())
	}
}

func TestDetailView_NotFound(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	cat := &fakeCatalog{products: []models.ProductRecord{
		{ID: "p1"}, {ID: "p2"}, {ID: "p3"}, {ID: "p4"}, {ID: "p5"},
	}}
	p, out := newPortal(sess, cat, "")

	if !p.DetailView(context.Background(), "p999") {
		t.Fatal("DetailView = false; want true")
	}
	if !strings.Contains(out.String(), "Asset not found in your library.") {
		t.Errorf("output missing not-found message:\n%s", out.String())
	}
}

func TestDetailView_RendersResolvedContent(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	cat := &fakeCatalog{products: []models.ProductRecord{{
		ID:          "p1",
		Name:        "Playbook",
		Description: "The playbook.",
		DownloadURL: "https://cdn.example.com/playbook.pdf",
		Details:     "Start here: [Written Instructions](https://docs.example.com/setup)",
		VideoURL:    "https://www.loom.com/share/abc123?sid=s1",
	}}}
	p, out := newPortal(sess, cat, "")

	if !p.DetailView(context.Background(), "p1") {
		t.Fatal("DetailView = false; want true")
	}
	got := out.String()
	for _, want := range []string{
		"Playbook",
		"https://cdn.example.com/playbook.pdf",
		"Written Instructions: https://docs.example.com/setup",
		"Guidance video: https://www.loom.com/embed/abc123?sid=s1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDetailView_FetchErrorShowsBanner(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	p, out := newPortal(sess, &fakeCatalog{err: errors.New("http 500")}, "")

	if !p.DetailView(context.Background(), "p1") {
		t.Fatal("DetailView = false; want true")
	}
	if !strings.Contains(out.String(), "Error retrieving asset details") {
		t.Errorf("output missing error state:\n%s", out.String())
	}
}

func TestLogout(t *testing.T) {
	sess := &fakeSession{snap: authedSnap(false)}
	p, out := newPortal(sess, &fakeCatalog{}, "")

	p.Logout()
	if sess.logoutCalls != 1 {
		t.Errorf("logout called %d times; want 1", sess.logoutCalls)
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Errorf("output missing logout notice:\n%s", out.String())
	}
}
