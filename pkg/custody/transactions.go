package custody

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// TransferQuery filters a quarantined-transfer listing. Kind and
// Quarantined are optional; a nil Quarantined means "either".
type TransferQuery struct {
	DomainID    string
	Kind        string
	Quarantined *bool
}

// ListTransactions lists the transaction orders in a domain.
func (c *Client) ListTransactions(ctx context.Context, domainID string) (json.RawMessage, error) {
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	return c.getJSON(ctx, "/v0/transactions", query)
}

// GetTransaction fetches a single transaction order by id.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (json.RawMessage, error) {
	if strings.TrimSpace(transactionID) == "" {
		return nil, fmt.Errorf("transaction ID is required")
	}
	return c.getJSON(ctx, "/v0/transactions/"+url.PathEscape(transactionID), nil)
}

// ListTransfers lists transfers in a domain, optionally narrowed by kind
// and quarantine status.
func (c *Client) ListTransfers(ctx context.Context, filters TransferQuery) (json.RawMessage, error) {
	if strings.TrimSpace(filters.DomainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", filters.DomainID)
	if strings.TrimSpace(filters.Kind) != "" {
		query.Set("kind", filters.Kind)
	}
	if filters.Quarantined != nil {
		query.Set("quarantined", strconv.FormatBool(*filters.Quarantined))
	}
	return c.getJSON(ctx, "/v0/transfers", query)
}
