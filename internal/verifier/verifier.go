// Package verifier implements the HTTP client for the remote
// credential verification service.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/angussewell/lead-magnet-library/internal/models"
)

// Client calls the credential verification webhook.
type Client struct {
	// HTTP is the underlying transport client.
	HTTP *http.Client
	// URL is the full webhook endpoint.
	URL string
}

// NewClient constructs a verifier Client for the given endpoint.
// No request timeout is imposed beyond the transport's own.
func NewClient(httpClient *http.Client, url string) *Client {
	return &Client{HTTP: httpClient, URL: url}
}

// response mirrors the verifier's JSON body. A successful check is
// {"success":true,"firstName":"..."}; anything else is a denial.
type response struct {
	Success   bool   `json:"success"`
	FirstName string `json:"firstName"`
	Message   string `json:"message"`
}

// Verify posts the credentials and parses the verdict.
//
// Any non-2xx status, any 2xx body that is not valid JSON, and any
// 2xx body lacking success=true with a non-empty firstName all fold
// into a denied verdict with a nil error. The error return is
// reserved for transport-level failures (request could not be built
// or sent); the caller treats those as denials too.
func (c *Client) Verify(ctx context.Context, cred models.Credential) (models.Verdict, error) {
	body, err := json.Marshal(cred)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("encode credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return models.Verdict{}, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return models.Verdict{}, fmt.Errorf("verify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.Denied(fmt.Sprintf("verifier returned status %d", resp.StatusCode)), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Denied("unreadable verifier response"), nil
	}

	var parsed response
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return models.Denied("malformed verifier response"), nil
	}

	if !parsed.Success || parsed.FirstName == "" {
		return models.Denied(parsed.Message), nil
	}
	return models.Approved(parsed.FirstName), nil
}
