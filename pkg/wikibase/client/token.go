package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wikibase-go/rest-client/pkg/wikibase/errors"
)

// TokenProvider supplies the bearer token to attach to an outgoing
// request. It is consulted once per request with the request method,
// so implementations can refresh tokens before mutating calls while
// treating GET as a no-op.
type TokenProvider interface {
	Token(ctx context.Context, method string) (string, error)
}

type staticTokenProvider string

func (t staticTokenProvider) Token(_ context.Context, _ string) (string, error) {
	return string(t), nil
}

// The store's tokens are valid for four hours, so renew a bit before
// that by default.
const defaultRenewalInterval = (3*60 + 50) * time.Minute

// BearerToken is a TokenProvider backed by an OAuth2 client. With
// only an access token set it behaves like a static token. With a
// client ID, client secret and refresh token it renews the access
// token before mutating requests once the renewal interval has
// passed.
type BearerToken struct {
	mu sync.Mutex

	apiURL       string
	clientID     string
	clientSecret string
	accessToken  string
	refreshToken string

	lastUpdate      time.Time
	renewalInterval time.Duration
}

func OAuth2Info(clientID, clientSecret string) func(*BearerToken) {
	return func(b *BearerToken) {
		b.clientID = clientID
		b.clientSecret = clientSecret
	}
}

func RefreshToken(refreshToken string) func(*BearerToken) {
	return func(b *BearerToken) {
		b.refreshToken = refreshToken
	}
}

func InitialAccessToken(accessToken string) func(*BearerToken) {
	return func(b *BearerToken) {
		b.accessToken = accessToken
	}
}

// NewBearerToken creates a token provider against the OAuth2
// endpoints of the API rooted at apiURL.
func NewBearerToken(apiURL string, options ...func(*BearerToken)) *BearerToken {
	b := &BearerToken{
		apiURL:          strings.TrimSuffix(apiURL, "/"),
		renewalInterval: defaultRenewalInterval,
	}

	for _, option := range options {
		option(b)
	}

	return b
}

func (b *BearerToken) Token(ctx context.Context, method string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if method == http.MethodGet {
		return b.accessToken, nil
	}

	if b.canRenew() && b.needsRenewal() {
		if err := b.renew(ctx); err != nil {
			return "", err
		}
	}

	return b.accessToken, nil
}

// AuthorizationCodeURL returns the URL to send a user to so they can
// authorize this client. The code from the redirect is exchanged for
// tokens via ExchangeCode.
func (b *BearerToken) AuthorizationCodeURL() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.clientID == "" {
		return "", fmt.Errorf("no oauth2 client id configured (%w)", errors.ErrRequest)
	}

	return fmt.Sprintf("%s/oauth2/authorize?client_id=%s&response_type=code", b.apiURL, url.QueryEscape(b.clientID)), nil
}

// ExchangeCode trades an authorization code for an access token and
// refresh token.
func (b *BearerToken) ExchangeCode(ctx context.Context, code string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.clientID == "" || b.clientSecret == "" {
		return fmt.Errorf("no oauth2 client credentials configured (%w)", errors.ErrRequest)
	}

	return b.requestTokens(ctx, url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {b.clientID},
		"client_secret": {b.clientSecret},
		"code":          {code},
	})
}

func (b *BearerToken) canRenew() bool {
	return b.clientID != "" && b.clientSecret != "" && b.refreshToken != ""
}

func (b *BearerToken) needsRenewal() bool {
	if b.lastUpdate.IsZero() {
		return true
	}
	return time.Since(b.lastUpdate) >= b.renewalInterval
}

func (b *BearerToken) renew(ctx context.Context) error {
	return b.requestTokens(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {b.clientID},
		"client_secret": {b.clientSecret},
		"refresh_token": {b.refreshToken},
	})
}

func (b *BearerToken) requestTokens(ctx context.Context, form url.Values) error {
	httpClient := http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	endpoint := b.apiURL + "/oauth2/access_token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create token request: %s (%w)", err.Error(), errors.ErrInternal)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send token request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read token response: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIErrorFromResponse(resp.StatusCode, respBody)
	}

	var tokens struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		return fmt.Errorf("failed to unmarshal token response: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if tokens.AccessToken == "" {
		return fmt.Errorf("token response carried no access token (%w)", errors.ErrBadResponse)
	}
	if tokens.RefreshToken == "" {
		return fmt.Errorf("token response carried no refresh token (%w)", errors.ErrBadResponse)
	}

	b.accessToken = tokens.AccessToken
	b.refreshToken = tokens.RefreshToken
	b.lastUpdate = time.Now()

	if tokens.ExpiresIn > 0 {
		// renew at 90% of the token's lifetime
		b.renewalInterval = time.Duration(tokens.ExpiresIn) * time.Second / 10 * 9
	} else {
		b.renewalInterval = defaultRenewalInterval
	}

	return nil
}
