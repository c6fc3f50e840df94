// Package portal implements the terminal views of the product
// library: the login form, the library listing, and the product
// detail view. Views consult the access gate before rendering and
// never mutate the session beyond its published operations.
package portal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/angussewell/lead-magnet-library/internal/catalog"
	"github.com/angussewell/lead-magnet-library/internal/gate"
	"github.com/angussewell/lead-magnet-library/internal/models"
	"github.com/angussewell/lead-magnet-library/internal/session"
	"go.uber.org/zap"
)

// loginFailedMessage is the single generic message for every failed
// attempt. Wrong credentials and verifier glitches read the same.
const loginFailedMessage = "Authentication failed. Please verify your credentials or try again."

// Session is the slice of the session state machine the views need.
type Session interface {
	Snapshot() session.Snapshot
	Login(ctx context.Context, email, password string) bool
	Logout()
	AcknowledgeWelcome()
}

// CatalogLister fetches the product catalog.
type CatalogLister interface {
	List(ctx context.Context) ([]models.ProductRecord, error)
}

// Portal holds the wiring shared by all views.
type Portal struct {
	// Session is the authentication state machine.
	Session Session
	// Catalog fetches the product feed.
	Catalog CatalogLister
	// Out receives all rendered view text.
	Out io.Writer
	// Log is used for diagnostics, never for user-facing text.
	Log *zap.Logger

	in *bufio.Scanner
}

// New constructs a Portal reading user input from in and rendering
// to out.
func New(sess Session, cat CatalogLister, in io.Reader, out io.Writer, log *zap.Logger) *Portal {
	return &Portal{
		Session: sess,
		Catalog: cat,
		Out:     out,
		Log:     log,
		in:      bufio.NewScanner(in),
	}
}

// readLine reads one trimmed input line, or "" at end of input.
func (p *Portal) readLine() string {
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// LoginView prompts for credentials and runs one login attempt.
// The prompt loop is sequential, so a second attempt cannot be
// submitted while one is outstanding. A failed attempt renders one
// generic message and leaves the form usable again.
func (p *Portal) LoginView(ctx context.Context) bool {
	fmt.Fprintln(p.Out, "Access Your Portal")
	fmt.Fprint(p.Out, "Email address: ")
	email := p.readLine()
	fmt.Fprint(p.Out, "Password: ")
	password := p.readLine()

	fmt.Fprintln(p.Out, "Authenticating...")
	if !p.Session.Login(ctx, email, password) {
		fmt.Fprintln(p.Out, loginFailedMessage)
		return false
	}

	return true
}

// LibraryView renders the product library. Unauthenticated access is
// redirected back to the login view (reported through the false
// return); nothing protected is rendered in that case.
func (p *Portal) LibraryView(ctx context.Context) bool {
	if gate.Evaluate(p.Session.Snapshot()) != gate.ActionRender {
		fmt.Fprintln(p.Out, "Please authenticate to access your library.")
		return false
	}

	products, err := p.Catalog.List(ctx)

	// The fetch has settled (either way), so the one-time welcome
	// notice may now cover the page.
	p.maybeShowWelcome()

	if err != nil {
		p.Log.Warn("catalog fetch failed", zap.Error(err))
		fmt.Fprintln(p.Out, "Failed to load product library. Please try again later.")
		return true
	}

	fmt.Fprintln(p.Out, "Your Digital Library")
	if len(products) == 0 {
		fmt.Fprintln(p.Out, "Your library is currently empty.")
		return true
	}
	for _, prod := range products {
		fmt.Fprintf(p.Out, "  [%s] %s — %s\n", prod.ID, prod.Name, prod.Description)
	}
	return true
}

// DetailView renders one product by id, resolving it against a fresh
// catalog snapshot. A missing id is a normal outcome with its own
// message, not an error banner.
func (p *Portal) DetailView(ctx context.Context, id string) bool {
	if gate.Evaluate(p.Session.Snapshot()) != gate.ActionRender {
		fmt.Fprintln(p.Out, "Please authenticate to access your library.")
		return false
	}

	products, err := p.Catalog.List(ctx)
	if err != nil {
		p.Log.Warn("catalog fetch failed", zap.Error(err))
		fmt.Fprintln(p.Out, "Error retrieving asset details. Return to your library and try again.")
		return true
	}

	prod, ok := catalog.FindProduct(id, products)
	if !ok {
		fmt.Fprintln(p.Out, "Asset not found in your library.")
		return true
	}

	fmt.Fprintln(p.Out, prod.Name)
	fmt.Fprintln(p.Out, prod.Description)
	fmt.Fprintf(p.Out, "Download: %s\n", prod.DownloadURL)
	if prod.Details != "" {
		fmt.Fprintln(p.Out, "Specifications & Setup:")
		fmt.Fprintln(p.Out, prod.Details)
		if link, ok := catalog.ExtractDocumentationLink(prod.Details); ok {
			fmt.Fprintf(p.Out, "Written Instructions: %s\n", link)
		}
	}
	if prod.VideoURL != "" {
		fmt.Fprintf(p.Out, "Guidance video: %s\n", catalog.NormalizeVideoEmbed(prod.VideoURL))
	}
	return true
}

// Logout resets the session and announces the return to the login
// view.
func (p *Portal) Logout() {
	p.Session.Logout()
	fmt.Fprintln(p.Out, "Logged out.")
}

// maybeShowWelcome renders the blocking one-time welcome notice when
// the gate says it is due, and dismisses it on acknowledgment.
func (p *Portal) maybeShowWelcome() {
	snap := p.Session.Snapshot()
	if !gate.OverlayVisible(snap, true) {
		return
	}

	name := snap.DisplayName
	if name == "" {
		name = "User"
	}
	fmt.Fprintf(p.Out, "Welcome, %s! Your digital library awaits.\n", name)
	fmt.Fprint(p.Out, "Press Enter to enter your library: ")
	p.readLine()
	p.Session.AcknowledgeWelcome()
}
