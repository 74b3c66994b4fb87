package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

// GitHub API endpoint for the authenticated user's profile
const userEndpoint = "https://api.github.com/user"

// defaultScopes are the permissions requested during authorization
var defaultScopes = []string{"read:user", "user:email"}

// User is the minimal profile snapshot stored in a login session. Name,
// AvatarURL and Email are independently optional on GitHub profiles; a
// missing field decodes to the empty string, never an error.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
	Email     string `json:"email"`
}

// Config holds GitHub OAuth App credentials and client options.
type Config struct {
	// ClientID is the GitHub OAuth App client ID.
	ClientID string

	// ClientSecret is the GitHub OAuth App client secret.
	ClientSecret string

	// CallbackURL is the redirect URI registered with the OAuth App.
	CallbackURL string

	// Scopes are optional custom scopes (defaults to ["read:user", "user:email"]).
	Scopes []string

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client

	// RequestTimeout bounds each call to GitHub (default: 10s).
	RequestTimeout time.Duration
}

// Provider performs the two outbound calls of the authorization-code flow:
// the code-for-token exchange and the bearer-authenticated profile fetch.
type Provider struct {
	*oauth2.Config
	httpClient     *http.Client
	scopes         []string
	requestTimeout time.Duration
}

// NewProvider creates a GitHub OAuth provider.
func NewProvider(cfg *Config) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, fmt.Errorf("client secret is required")
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}
	scopesCopy := make([]string, len(scopes))
	copy(scopesCopy, scopes)

	requestTimeout := cfg.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = 10 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Provider{
		Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.CallbackURL,
			Endpoint:     oauthgithub.Endpoint,
		},
		httpClient:     httpClient,
		scopes:         scopesCopy,
		requestTimeout: requestTimeout,
	}, nil
}

// AuthorizationURL builds the GitHub authorize URL the browser is redirected
// to. Scopes are joined with commas into a single scope parameter; GitHub
// accepts either separator and the comma avoids space-encoding ambiguity in
// the query string.
func (p *Provider) AuthorizationURL() string {
	return p.AuthCodeURL("", oauth2.SetAuthURLParam("scope", strings.Join(p.scopes, ",")))
}

// ExchangeCode swaps a single-use authorization code for an access token.
// A response without an access_token field surfaces as an error from the
// oauth2 package, the same as a transport failure.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx, cancel := p.ensureContextTimeout(ctx)
	defer cancel()

	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// FetchUser retrieves the authenticated user's profile using the access
// token as a bearer credential.
func (p *Provider) FetchUser(ctx context.Context, accessToken string) (*User, error) {
	ctx, cancel := p.ensureContextTimeout(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user request failed with status %d", resp.StatusCode)
	}

	var ghUser struct {
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ghUser); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}

	return &User{
		Login:     ghUser.Login,
		Name:      ghUser.Name,
		AvatarURL: ghUser.AvatarURL,
		Email:     ghUser.Email,
	}, nil
}

// ensureContextTimeout ensures the context has a deadline, adding one if
// needed. If the context already has a deadline, the original context is
// returned with a no-op cancel.
func (p *Provider) ensureContextTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.requestTimeout)
}
