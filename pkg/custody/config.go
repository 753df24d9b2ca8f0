package custody

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config configures a custody backend client. AuthURL and APIURL are
// required; PrivateKey and PublicKey identify the API credential used for
// the token exchange.
type Config struct {
	AuthURL    string
	APIURL     string
	PrivateKey string
	PublicKey  string
	HTTPClient *http.Client
	Timeout    time.Duration
	Headers    map[string]string
}

func normalizeServiceURL(name string, raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", name, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid %s: scheme must be http or https", name)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return "", fmt.Errorf("invalid %s: host is required", name)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}
