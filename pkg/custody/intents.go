package custody

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/xrpl-custody/custody-sdk-go/pkg/intent"
)

// proposeIntentBody is the wire wrapper the backend expects around a
// proposal envelope.
type proposeIntentBody struct {
	Request *intent.Envelope `json:"request"`
}

// ProposeIntentResult carries the backend's response to a proposal.
// RequestID identifies the request record for later state polling;
// Response is the full backend body.
type ProposeIntentResult struct {
	RequestID string
	Response  json.RawMessage
}

// ProposeIntent submits a proposal envelope for authorization and
// eventual execution by the backend.
func (c *Client) ProposeIntent(ctx context.Context, envelope *intent.Envelope) (*ProposeIntentResult, error) {
	if envelope == nil {
		return nil, fmt.Errorf("envelope is required")
	}

	body, err := c.postJSON(ctx, "/v0/intents", proposeIntentBody{Request: envelope})
	if err != nil {
		return nil, err
	}

	var decoded struct {
		RequestID string `json:"requestId"`
	}
	// requestId is best-effort: older backend versions nest it differently
	// and the dashboard forwards the raw body either way.
	_ = json.Unmarshal(body, &decoded)

	return &ProposeIntentResult{RequestID: decoded.RequestID, Response: body}, nil
}

// GetIntent fetches a single intent by id within a domain.
func (c *Client) GetIntent(ctx context.Context, intentID string, domainID string) (json.RawMessage, error) {
	if strings.TrimSpace(intentID) == "" {
		return nil, fmt.Errorf("intent ID is required")
	}
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	return c.getJSON(ctx, "/v0/intents/"+url.PathEscape(intentID), query)
}

// RequestState fetches the authorization state of a previously submitted
// request, including the intent id once the backend assigns one.
func (c *Client) RequestState(ctx context.Context, requestID string, domainID string) (json.RawMessage, error) {
	if strings.TrimSpace(requestID) == "" {
		return nil, fmt.Errorf("request ID is required")
	}
	if strings.TrimSpace(domainID) == "" {
		return nil, fmt.Errorf("domain ID is required")
	}

	query := url.Values{}
	query.Set("domainId", domainID)
	return c.getJSON(ctx, "/v0/requests/"+url.PathEscape(requestID)+"/state", query)
}
