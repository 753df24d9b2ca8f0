package custody

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// ListDomains lists the domains visible to the calling credential.
func (c *Client) ListDomains(ctx context.Context) (json.RawMessage, error) {
	return c.getJSON(ctx, "/v0/domains", nil)
}

// ListTickers lists the tickers available on the given ledgers. At least
// one ledger id is required.
func (c *Client) ListTickers(ctx context.Context, ledgerIDs []string) (json.RawMessage, error) {
	if len(ledgerIDs) == 0 {
		return nil, fmt.Errorf("at least one ledger ID is required")
	}

	query := url.Values{}
	for _, ledgerID := range ledgerIDs {
		if strings.TrimSpace(ledgerID) == "" {
			return nil, fmt.Errorf("ledger ID must not be empty")
		}
		query.Add("ledgerId", ledgerID)
	}
	return c.getJSON(ctx, "/v0/tickers", query)
}

// GetTicker fetches a single ticker by id.
func (c *Client) GetTicker(ctx context.Context, tickerID string) (json.RawMessage, error) {
	if strings.TrimSpace(tickerID) == "" {
		return nil, fmt.Errorf("ticker ID is required")
	}
	return c.getJSON(ctx, "/v0/tickers/"+url.PathEscape(tickerID), nil)
}

// ListVaults lists the vaults available for provisioning accounts in a
// domain.
func (c *Client) ListVaults(ctx context.Context, domainID string) (json.RawMessage, error) {
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	return c.getJSON(ctx, "/v0/vaults", query)
}
