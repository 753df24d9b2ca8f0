package custody

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
)

// CurrentUser is the authenticated principal as seen by the backend for
// a given domain.
type CurrentUser struct {
	UserID   string `json:"userId"`
	DomainID string `json:"domainId"`
}

// Author converts the lookup result into the envelope author field.
func (u CurrentUser) Author() intent.Author {
	return intent.Author{ID: u.UserID, DomainID: u.DomainID}
}

// WhoAmI resolves the calling credential to its user within the domain.
// Every proposal names this principal as its author.
func (c *Client) WhoAmI(ctx context.Context, domainID string) (*CurrentUser, error) {
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	body, err := c.getJSON(ctx, "/v0/me", query)
	if err != nil {
		return nil, err
	}

	var user CurrentUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to decode current user: %w", err)
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("current user lookup did not include userId")
	}
	return &user, nil
}

// ListAccounts lists the custody accounts in a domain.
func (c *Client) ListAccounts(ctx context.Context, domainID string) (json.RawMessage, error) {
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	return c.getJSON(ctx, "/v0/accounts", query)
}

// AccountBalances fetches the ledger balances held by an account.
func (c *Client) AccountBalances(ctx context.Context, accountID string) (json.RawMessage, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	return c.getJSON(ctx, "/v0/accounts/"+url.PathEscape(accountID)+"/balances", nil)
}

// AccountAddresses fetches the ledger addresses derived for an account.
func (c *Client) AccountAddresses(ctx context.Context, accountID string) (json.RawMessage, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf("account ID is required")
	}
	return c.getJSON(ctx, "/v0/accounts/"+url.PathEscape(accountID)+"/addresses", nil)
}
