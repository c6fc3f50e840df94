// Package models defines the core data structures for credentials,
// verification verdicts, and catalog products.
package models

// Credential carries an email/password pair for a single verification
// call. It is never persisted and never logged.
type Credential struct {
	// Email is the address the user signed up with.
	Email string `json:"email"`
	// Password is the plain credential forwarded to the verifier.
	Password string `json:"password"`
}

// Verdict is the outcome of one credential check. Exactly one of the
// two shapes applies: approved with a display name, or denied with an
// optional reason.
type Verdict struct {
	// Approved reports whether the verifier accepted the credentials.
	Approved bool
	// DisplayName is the user's first name. Set only when Approved.
	DisplayName string
	// Reason is the verifier-supplied denial message, if any.
	Reason string
}

// Approved constructs an approving verdict carrying the display name.
func Approved(displayName string) Verdict {
	return Verdict{Approved: true, DisplayName: displayName}
}

// Denied constructs a denying verdict with an optional reason.
func Denied(reason string) Verdict {
	return Verdict{Reason: reason}
}

// ProductRecord is one entry of the catalog feed. Records are
// immutable once fetched; identity is the ID field.
type ProductRecord struct {
	// ID is the unique, stable identifier of the product.
	ID string `json:"id"`
	// Name is the product title.
	Name string `json:"name"`
	// Description is the short overview text.
	Description string `json:"description"`
	// ImageURL points at the product's cover image.
	ImageURL string `json:"imageUrl"`
	// DownloadURL points at the downloadable asset.
	DownloadURL string `json:"downloadUrl"`
	// Details holds optional rich-text setup instructions.
	Details string `json:"details,omitempty"`
	// VideoURL holds an optional guidance video link.
	VideoURL string `json:"videoUrl,omitempty"`
}
