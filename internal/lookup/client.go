// Package lookup validates cross-service references over synchronous HTTP.
// Each workflow gets a small client pointed at its sibling service; a parent
// entity is valid when the sibling answers 2xx for its business id.
package lookup

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"corebank/internal/core"
)

// CustomerClient asks the customer service whether a customer is live.
type CustomerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCustomerClient(baseURL string, timeout time.Duration) *CustomerClient {
	return &CustomerClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CustomerClient) VerifyCustomer(ctx context.Context, customerID string) error {
	endpoint := c.baseURL + "/customers?customerId=" + url.QueryEscape(customerID)
	return verify(ctx, c.httpClient, endpoint, core.ErrCustomerNotFound)
}

// AccountClient asks the account service whether an account is live.
type AccountClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAccountClient(baseURL string, timeout time.Duration) *AccountClient {
	return &AccountClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *AccountClient) VerifyAccount(ctx context.Context, accountID string) error {
	endpoint := c.baseURL + "/accounts?accountId=" + url.QueryEscape(accountID)
	return verify(ctx, c.httpClient, endpoint, core.ErrAccountNotFound)
}

// verify maps the sibling's answer onto workflow errors. 404 and 410 both
// mean the reference must not be persisted; any transport failure or
// unexpected status fails the whole request as dependency-unavailable
// rather than letting an unvalidated reference through.
func verify(ctx context.Context, client *http.Client, endpoint string, missing error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrLookupUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return missing
	default:
		return fmt.Errorf("%w: unexpected status %d from %s", core.ErrLookupUnavailable, resp.StatusCode, endpoint)
	}
}
