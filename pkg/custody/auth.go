package custody

import (
	"context"
	"crypto/ed25519"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	assertionLifetime = 5 * time.Minute
	tokenRefreshSlack = 30 * time.Second
	assertionType     = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"
)

// tokenSource exchanges a signed client assertion for a bearer token at
// the auth service and caches it until shortly before expiry.
type tokenSource struct {
	authURL    string
	keyID      string
	privateKey ed25519.PrivateKey
	httpClient *http.Client

	mutex     sync.Mutex
	token     string
	expiresAt time.Time
}

func newTokenSource(authURL string, config Config, httpClient *http.Client) (*tokenSource, error) {
	if strings.TrimSpace(config.PublicKey) == "" {
		return nil, fmt.Errorf("public key is required")
	}
	privateKey, err := parsePrivateKey(config.PrivateKey)
	if err != nil {
		return nil, err
	}
	return &tokenSource{
		authURL:    authURL,
		keyID:      strings.TrimSpace(config.PublicKey),
		privateKey: privateKey,
		httpClient: httpClient,
	}, nil
}

// bearer returns a valid token, fetching a fresh one when the cached
// token is missing or within the refresh slack of expiring.
func (t *tokenSource) bearer(ctx context.Context) (string, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.token != "" && time.Now().Before(t.expiresAt.Add(-tokenRefreshSlack)) {
		return t.token, nil
	}

	assertion, err := t.signAssertion()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_assertion_type", assertionType)
	form.Set("client_assertion", assertion)

	tokenURL := t.authURL + "/v0/oauth/token"
	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		tokenURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := t.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", &APIError{StatusCode: response.StatusCode, Message: strings.TrimSpace(string(body))}
	}

	var grant struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &grant); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if grant.AccessToken == "" {
		return "", fmt.Errorf("token response did not include access_token")
	}

	t.token = grant.AccessToken
	if grant.ExpiresIn > 0 {
		t.expiresAt = time.Now().Add(time.Duration(grant.ExpiresIn) * time.Second)
	} else {
		t.expiresAt = time.Now().Add(assertionLifetime)
	}
	return t.token, nil
}

func (t *tokenSource) signAssertion() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": t.keyID,
		"sub": t.keyID,
		"aud": t.authURL,
		"iat": now.Unix(),
		"exp": now.Add(assertionLifetime).Unix(),
		"jti": uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = t.keyID

	signed, err := token.SignedString(t.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign client assertion: %w", err)
	}
	return signed, nil
}

// parsePrivateKey accepts a PKCS#8 PEM block or a base64 Ed25519 seed or
// full private key.
func parsePrivateKey(material string) (ed25519.PrivateKey, error) {
	trimmed := strings.TrimSpace(material)
	if trimmed == "" {
		return nil, fmt.Errorf("private key is required")
	}

	if block, _ := pem.Decode([]byte(trimmed)); block != nil {
		parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key PEM: %w", err)
		}
		key, ok := parsed.(ed25519.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("private key must be Ed25519")
		}
		return key, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("private key must be PEM or base64: %w", err)
	}
	switch len(decoded) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(decoded), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(decoded), nil
	}
	return nil, fmt.Errorf("private key has unexpected length %d", len(decoded))
}
