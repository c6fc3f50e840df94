// Package catalog provides the client for the product catalog feed
// and the content-resolution helpers used by the detail view.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/angussewell/lead-magnet-library/internal/models"
)

// Client fetches the product catalog from the portal backend.
type Client struct {
	// HTTP is the underlying transport client.
	HTTP *http.Client
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string
}

// NewClient constructs a catalog Client for the given backend.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{HTTP: httpClient, BaseURL: baseURL}
}

// List fetches a fresh catalog snapshot. Transport failures, non-2xx
// statuses, and malformed payloads surface as errors for the view to
// display; there is no retry.
func (c *Client) List(ctx context.Context) ([]models.ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var products []models.ProductRecord
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

// FindProduct scans the catalog for the record with the given id.
// Absence is a normal outcome, reported through the second return.
func FindProduct(id string, products []models.ProductRecord) (models.ProductRecord, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.ProductRecord{}, false
}

// docLinkPattern matches a markdown link labeled exactly
// "Written Instructions". Only that one labeled link is recognized;
// this is not a general link extractor.
var docLinkPattern = regexp.MustCompile(`\[Written Instructions\]\(([^)\s]+)\)`)

// ExtractDocumentationLink returns the target of the first
// "Written Instructions" markdown link in the rich-text details,
// or false when no such link exists.
func ExtractDocumentationLink(details string) (string, bool) {
	m := docLinkPattern.FindStringSubmatch(details)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// sharePathPattern matches a loom share path: /share/<id>.
var sharePathPattern = regexp.MustCompile(`^/share/([A-Za-z0-9-]+)$`)

// NormalizeVideoEmbed rewrites a loom.com share link to its
// embeddable form, preserving an optional sid query parameter.
// Any URL that does not match the share-link shape passes through
// unchanged, so the function is total and idempotent.
func NormalizeVideoEmbed(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if u.Hostname() != "loom.com" && u.Hostname() != "www.loom.com" {
		return raw
	}
	m := sharePathPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return raw
	}

	u.Path = "/embed/" + m[1]
	if sid := u.Query().Get("sid"); sid != "" {
		u.RawQuery = url.Values{"sid": {sid}}.Encode()
	} else {
		u.RawQuery = ""
	}
	return u.String()
}
